package budget

import "fmt"

// Message is one unit of command output: plain text, or the path of a
// rendered chart image the transport should send as a picture.
type Message struct {
	Text  string
	Image string // path to a PNG file, empty for text messages
}

// Textf builds a text message.
func Textf(format string, args ...any) Message {
	return Message{Text: fmt.Sprintf(format, args...)}
}

// ImageMessage builds a message pointing at an image file.
func ImageMessage(path string) Message {
	return Message{Image: path}
}

// IsImage reports whether the message carries an image payload.
func (m Message) IsImage() bool { return m.Image != "" }

// String renders the message for a text-only surface. Images use the
// reserved "image://" prefix.
func (m Message) String() string {
	if m.IsImage() {
		return "image://" + m.Image
	}
	return m.Text
}
