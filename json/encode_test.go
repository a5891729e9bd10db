package json

import "testing"

func TestMarshal_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"null", nil, "null"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"int64", int64(-9007199254740991), "-9007199254740991"},
		{"uint", uint(42), "42"},
		{"float64 integral", float64(3), "3"},
		{"float64", 3.25, "3.25"},
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"empty array", []any{}, "[]"},
		{"array", []any{float64(1), float64(2), float64(3)}, "[1,2,3]"},
		{"empty object", map[string]any{}, "{}"},
		{"object sorted keys", map[string]any{"b": float64(2), "a": float64(1)}, `{"a":1,"b":2}`},
		{"nested", map[string]any{"sum": []any{float64(1), float64(2), float64(3)}}, `{"sum":[1,2,3]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Marshal(tt.input)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("Marshal() = %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestMarshal_StringEscaping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"quote", `"`, `"\""`},
		{"backslash", `\`, `"\\"`},
		{"newline", "\n", `"\n"`},
		{"tab", "\t", `"\t"`},
		{"carriage return", "\r", `"\r"`},
		{"backspace", "\b", `"\b"`},
		{"form feed", "\f", `"\f"`},
		{"control char", "", `""`},
		{"unicode passthrough", "Hello 世界", `"Hello 世界"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Marshal(tt.input)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("Marshal() = %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestMarshal_Unsupported(t *testing.T) {
	if _, err := Marshal(make(chan int)); err == nil {
		t.Error("expected error for unsupported type")
	}
	if _, err := Marshal(map[int]any{1: "x"}); err == nil {
		t.Error("expected error for non-string keyed map")
	}
}
