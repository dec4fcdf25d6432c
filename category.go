package budget

import (
	"encoding/json"
	"strings"

	"github.com/etnz/budgetbot/date"
)

// Category is a named budget envelope: a spending limit that resets over a
// recurring period. Name is a case-insensitive key.
type Category struct {
	Name   string      `json:"name"`
	Limit  Money       `json:"limit"`
	Period date.Period `json:"period"`
}

// CategoryList is the persisted aggregate of all categories, insertion order
// preserved.
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// Find returns a pointer to the first category matching name,
// case-insensitively, or nil.
func (l *CategoryList) Find(name string) *Category {
	for i := range l.Categories {
		if strings.EqualFold(l.Categories[i].Name, name) {
			return &l.Categories[i]
		}
	}
	return nil
}

// Upsert replaces the limit and period of the category matching c.Name, or
// appends c if there is none.
func (l *CategoryList) Upsert(c Category) {
	if existing := l.Find(c.Name); existing != nil {
		existing.Limit = c.Limit
		existing.Period = c.Period
		return
	}
	l.Categories = append(l.Categories, c)
}

// Remove deletes the category matching name and reports whether one was
// removed.
func (l *CategoryList) Remove(name string) bool {
	for i := range l.Categories {
		if strings.EqualFold(l.Categories[i].Name, name) {
			l.Categories = append(l.Categories[:i], l.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// DecodeCategories parses the stored JSON aggregate. A value that does not
// decode yields an empty list, not an error: it means "not yet created".
func DecodeCategories(value string) CategoryList {
	var l CategoryList
	if err := json.Unmarshal([]byte(value), &l); err != nil {
		return CategoryList{}
	}
	return l
}

// Encode renders the aggregate as its stored JSON form.
func (l CategoryList) Encode() (string, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
