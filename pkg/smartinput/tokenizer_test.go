package smartinput_test

import (
	"testing"

	"smart-task-input/pkg/smartinput"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []smartinput.Token
	}{
		{name: "empty", input: "", want: nil},
		{name: "blank", input: " \t\n", want: nil},
		{
			name:  "keeps prefixes and punctuation",
			input: "Fix #api, @Bob!",
			want: []smartinput.Token{
				{Text: "Fix", Folded: "fix", Start: 0, End: 3},
				{Text: "#api,", Folded: "#api,", Start: 4, End: 9},
				{Text: "@Bob!", Folded: "@bob!", Start: 10, End: 15},
			},
		},
		{
			name:  "whitespace runs",
			input: "  a \t\tb  ",
			want: []smartinput.Token{
				{Text: "a", Folded: "a", Start: 2, End: 3},
				{Text: "b", Folded: "b", Start: 6, End: 7},
			},
		},
		{
			name:  "unicode whitespace and byte offsets",
			input: "Ünïcode\u00a0TOMORROW",
			want: []smartinput.Token{
				{Text: "Ünïcode", Folded: "ünïcode", Start: 0, End: 9},
				{Text: "TOMORROW", Folded: "tomorrow", Start: 11, End: 19},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := smartinput.Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
				if tt.input[got[i].Start:got[i].End] != got[i].Text {
					t.Errorf("token %d offsets do not match text", i)
				}
			}
		})
	}
}
