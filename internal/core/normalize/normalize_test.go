package normalize

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"ascii case", "Wordle-Bot LS", "wordle-bot ls"},
		{"fullwidth", "ｗｏｒｄｌｅ-ｂｏｔ", "wordle-bot"},
		{"zero width joiner", "Ham\u200dish", "hamish"},
		{"stray combining mark", "q\u0301uiz", "quiz"},
		{"whitespace runs", "  wordle-bot \t  find\n crane ", "wordle-bot find crane"},
		{"german sharp s", "STRASSE", "strasse"},
		{"invalid utf8", "ok\xffay", "okay"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Fold(c.in); got != c.out {
				t.Fatalf("Fold(%q) = %q, want %q", c.in, got, c.out)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal("Jonathan", "ＪＯＮＡＴＨＡＮ") {
		t.Fatalf("fullwidth uppercase should fold equal")
	}
	if Equal("Jonathan", "Jon") {
		t.Fatalf("different names folded equal")
	}
}
