package json

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecode_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{"null", "null", nil},
		{"true", "true", true},
		{"false", "false", false},
		{"int", "42", float64(42)},
		{"negative", "-17", float64(-17)},
		{"float", "3.25", 3.25},
		{"exponent", "2e3", float64(2000)},
		{"string", `"hello"`, "hello"},
		{"empty string", `""`, ""},
		{"unicode", `"Hello 世界"`, "Hello 世界"},
		{"escapes", `"a\"b\\c\nd"`, "a\"b\\c\nd"},
		{"unicode escape", `"adrián"`, "adrián"},
		{"surrogate pair", `"😀"`, "😀"},
		{"empty array", "[]", []any{}},
		{"array", "[1,2,3]", []any{float64(1), float64(2), float64(3)}},
		{"empty object", "{}", map[string]any{}},
		{"object", `{"a":1,"b":"two"}`, map[string]any{"a": float64(1), "b": "two"}},
		{"nested", `{"sum":[1,2,3]}`, map[string]any{"sum": []any{float64(1), float64(2), float64(3)}}},
		{"whitespace", " { \"a\" : [ 1 , null ] } ", map[string]any{"a": []any{float64(1), nil}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(value, tt.expected) {
				t.Errorf("Decode() = %#v, want %#v", value, tt.expected)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"truncated object", `{"a":`},
		{"truncated array", "[1,2"},
		{"truncated string", `"abc`},
		{"bare word", "hello"},
		{"trailing data", "{} {}"},
		{"bad escape", `"\x"`},
		{"bad unicode escape", `"\u12g4"`},
		{"lone comma", "[1,]"},
		{"missing colon", `{"a" 1}`},
		{"control char in string", "\"a\x01b\""},
		{"minus only", "-"},
		{"dot without digits", "1."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.input)); err == nil {
				t.Errorf("Decode(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestDecode_SentinelErrors(t *testing.T) {
	if _, err := Decode([]byte(`{"a"`)); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("expected ErrUnexpectedEndOfInput, got %v", err)
	}
	if _, err := Decode([]byte("[1 2]")); !errors.Is(err, ErrSyntaxError) {
		t.Errorf("expected ErrSyntaxError, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`{"sum":[1,2,3]}`,
		`{"a":{"b":{"c":[true,false,null]}}}`,
		`["mixed",1,2.5,{"k":"v"}]`,
		`{"unicode":"adrián","empty":""}`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Decode([]byte(input))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			encoded, err := Marshal(first)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			second, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode(Marshal()) error = %v", err)
			}

			if !reflect.DeepEqual(first, second) {
				t.Errorf("round trip changed value: %#v != %#v", first, second)
			}
		})
	}
}
