package budget

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"5", KindInteger},
		{"-12", KindInteger},
		{"5.50", KindFloat},
		{"1.99", KindFloat},
		{"20/12", KindDate},
		{"2024-01-01", KindDate},
		{"food", KindText},
		{"1m", KindText},
		{"show", KindText},
		{"بوجه", KindText},
	}
	for _, tt := range tests {
		if got := Classify(tt.raw).Kind; got != tt.want {
			t.Errorf("Classify(%q).Kind = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestClassify_IntegerIsNumeric(t *testing.T) {
	tok := Classify("5")
	if !tok.IsNumeric() {
		t.Fatalf("Classify(%q).IsNumeric() = false, want true", tok.Raw)
	}
	if got := tok.Number().String(); got != "5" {
		t.Errorf("Number() = %s, want 5", got)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("  food   1.99  greggs ")
	if len(tokens) != 3 {
		t.Fatalf("Tokenize returned %d tokens, want 3", len(tokens))
	}
	wantKinds := []Kind{KindText, KindFloat, KindText}
	for i, k := range wantKinds {
		if tokens[i].Kind != k {
			t.Errorf("token[%d] kind = %v, want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestToken_Is(t *testing.T) {
	tok := Classify("Budget")
	if !tok.Is("budget", "بوجه") {
		t.Errorf("Is() should match case-insensitively")
	}
	if tok.Is("delete") {
		t.Errorf("Is() matched an unrelated word")
	}
}
