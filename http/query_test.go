package http

import (
	"errors"
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Values
	}{
		{"empty", "", nil},
		{"single", "q=unification", Values{{"q", "unification"}}},
		{"multiple", "x=100&q=unification&y=450", Values{{"x", "100"}, {"q", "unification"}, {"y", "450"}}},
		{"no value", "flag", Values{{"flag", ""}}},
		{"empty value", "q=", Values{{"q", ""}}},
		{"percent decoding", "q=a%20b", Values{{"q", "a b"}}},
		{"plus as space", "q=a+b", Values{{"q", "a b"}}},
		{"utf8 multibyte", "q=adri%C3%A1n", Values{{"q", "adrián"}}},
		{"encoded key", "ke%79=v", Values{{"key", "v"}}},
		{"equals in value", "q=a=b", Values{{"q", "a=b"}}},
		{"dangling ampersand", "a=1&", Values{{"a", "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := ParseQuery(tt.raw)
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", tt.raw, err)
			}
			if len(values) != len(tt.expected) {
				t.Fatalf("ParseQuery(%q) = %v, want %v", tt.raw, values, tt.expected)
			}
			for i := range values {
				if values[i] != tt.expected[i] {
					t.Errorf("pair %d = %v, want %v", i, values[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseQueryInvalidEscape(t *testing.T) {
	for _, raw := range []string{"q=%", "q=%2", "q=%zz", "%G0=v"} {
		if _, err := ParseQuery(raw); !errors.Is(err, ErrInvalidEscape) {
			t.Errorf("ParseQuery(%q) expected ErrInvalidEscape, got %v", raw, err)
		}
	}
}

func TestValuesFirstOccurrenceWins(t *testing.T) {
	values, err := ParseQuery("q=first&q=second&other=x")
	if err != nil {
		t.Fatal(err)
	}

	got, found := values.Get("q")
	if !found || got != "first" {
		t.Errorf("Get(q) = %q, want %q", got, "first")
	}

	all := values.All("q")
	if len(all) != 2 || all[0] != "first" || all[1] != "second" {
		t.Errorf("All(q) = %v", all)
	}

	if values.Has("missing") {
		t.Error("Has(missing) should be false")
	}
}
