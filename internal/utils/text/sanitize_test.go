package text

import "testing"

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain text", in: "Hello world", want: "Hello world"},
		{name: "single tag", in: "<p>Hello world</p>", want: "Hello world"},
		{name: "nested tags", in: "<div><p>Hello <b>world</b></p></div>", want: "Hello world"},
		{name: "leading and trailing whitespace", in: "  <p> Padded </p>  ", want: "Padded"},
		{name: "unclosed tag", in: "<p>Broken markup", want: "Broken markup"},
		{name: "entity decoding", in: "<p>Fish &amp; chips</p>", want: "Fish & chips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.in); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
