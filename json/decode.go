package json

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	ErrSyntaxError          = errors.New("json: syntax error")
	ErrUnexpectedEndOfInput = errors.New("json: unexpected end of input")
)

// Decode parses data into a generic value: objects become map[string]any,
// arrays []any, numbers float64, strings string, and the literals become
// bool or nil. Anything left over after the first value is an error.
func Decode(data []byte) (any, error) {
	scanner := scanner{input: data}

	scanner.skipWhitespace()
	value, err := scanner.value()
	if err != nil {
		return nil, err
	}

	scanner.skipWhitespace()
	if scanner.cursor != len(scanner.input) {
		return nil, fmt.Errorf("%w: trailing data at offset %d", ErrSyntaxError, scanner.cursor)
	}

	return value, nil
}

type scanner struct {
	input  []byte
	cursor int
}

func (s *scanner) skipWhitespace() {
	for s.cursor < len(s.input) {
		switch s.input[s.cursor] {
		case ' ', '\t', '\n', '\r':
			s.cursor++
		default:
			return
		}
	}
}

func (s *scanner) peek() (byte, error) {
	if s.cursor >= len(s.input) {
		return 0, ErrUnexpectedEndOfInput
	}
	return s.input[s.cursor], nil
}

func (s *scanner) expect(c byte) error {
	got, err := s.peek()
	if err != nil {
		return err
	}
	if got != c {
		return fmt.Errorf("%w: expected %q at offset %d", ErrSyntaxError, c, s.cursor)
	}
	s.cursor++
	return nil
}

func (s *scanner) literal(text string) error {
	if len(s.input)-s.cursor < len(text) {
		return ErrUnexpectedEndOfInput
	}
	if string(s.input[s.cursor:s.cursor+len(text)]) != text {
		return fmt.Errorf("%w: invalid literal at offset %d", ErrSyntaxError, s.cursor)
	}
	s.cursor += len(text)
	return nil
}

func (s *scanner) value() (any, error) {
	c, err := s.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case c == '{':
		return s.object()
	case c == '[':
		return s.array()
	case c == '"':
		return s.string()
	case c == 't':
		return true, s.literal("true")
	case c == 'f':
		return false, s.literal("false")
	case c == 'n':
		return nil, s.literal("null")
	case c == '-' || ('0' <= c && c <= '9'):
		return s.number()
	}
	return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntaxError, c, s.cursor)
}

func (s *scanner) object() (map[string]any, error) {
	if err := s.expect('{'); err != nil {
		return nil, err
	}

	object := make(map[string]any)
	s.skipWhitespace()
	if c, err := s.peek(); err != nil {
		return nil, err
	} else if c == '}' {
		s.cursor++
		return object, nil
	}

	for {
		s.skipWhitespace()
		key, err := s.string()
		if err != nil {
			return nil, err
		}

		s.skipWhitespace()
		if err := s.expect(':'); err != nil {
			return nil, err
		}

		s.skipWhitespace()
		value, err := s.value()
		if err != nil {
			return nil, err
		}
		object[key] = value

		s.skipWhitespace()
		c, err := s.peek()
		if err != nil {
			return nil, err
		}
		s.cursor++
		if c == '}' {
			return object, nil
		}
		if c != ',' {
			return nil, fmt.Errorf("%w: expected ',' or '}' at offset %d", ErrSyntaxError, s.cursor-1)
		}
	}
}

func (s *scanner) array() ([]any, error) {
	if err := s.expect('['); err != nil {
		return nil, err
	}

	array := make([]any, 0)
	s.skipWhitespace()
	if c, err := s.peek(); err != nil {
		return nil, err
	} else if c == ']' {
		s.cursor++
		return array, nil
	}

	for {
		s.skipWhitespace()
		value, err := s.value()
		if err != nil {
			return nil, err
		}
		array = append(array, value)

		s.skipWhitespace()
		c, err := s.peek()
		if err != nil {
			return nil, err
		}
		s.cursor++
		if c == ']' {
			return array, nil
		}
		if c != ',' {
			return nil, fmt.Errorf("%w: expected ',' or ']' at offset %d", ErrSyntaxError, s.cursor-1)
		}
	}
}

func (s *scanner) string() (string, error) {
	if err := s.expect('"'); err != nil {
		return "", err
	}

	var b []byte
	for {
		if s.cursor >= len(s.input) {
			return "", ErrUnexpectedEndOfInput
		}
		c := s.input[s.cursor]

		switch {
		case c == '"':
			s.cursor++
			return string(b), nil
		case c == '\\':
			s.cursor++
			decoded, err := s.escape()
			if err != nil {
				return "", err
			}
			b = append(b, decoded...)
		case c < 0x20:
			return "", fmt.Errorf("%w: raw control character at offset %d", ErrSyntaxError, s.cursor)
		default:
			b = append(b, c)
			s.cursor++
		}
	}
}

func (s *scanner) escape() ([]byte, error) {
	c, err := s.peek()
	if err != nil {
		return nil, err
	}
	s.cursor++

	switch c {
	case '"', '\\', '/':
		return []byte{c}, nil
	case 'b':
		return []byte{'\b'}, nil
	case 'f':
		return []byte{'\f'}, nil
	case 'n':
		return []byte{'\n'}, nil
	case 'r':
		return []byte{'\r'}, nil
	case 't':
		return []byte{'\t'}, nil
	case 'u':
		r, err := s.codeUnit()
		if err != nil {
			return nil, err
		}
		if utf16.IsSurrogate(r) {
			if err := s.literal(`\u`); err != nil {
				return nil, err
			}
			r2, err := s.codeUnit()
			if err != nil {
				return nil, err
			}
			r = utf16.DecodeRune(r, r2)
		}
		return utf8.AppendRune(nil, r), nil
	}
	return nil, fmt.Errorf("%w: invalid escape at offset %d", ErrSyntaxError, s.cursor-1)
}

func (s *scanner) codeUnit() (rune, error) {
	if len(s.input)-s.cursor < 4 {
		return 0, ErrUnexpectedEndOfInput
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := s.input[s.cursor+i]
		var digit rune
		switch {
		case '0' <= c && c <= '9':
			digit = rune(c - '0')
		case 'a' <= c && c <= 'f':
			digit = rune(c-'a') + 10
		case 'A' <= c && c <= 'F':
			digit = rune(c-'A') + 10
		default:
			return 0, fmt.Errorf("%w: invalid \\u escape at offset %d", ErrSyntaxError, s.cursor+i)
		}
		r = r<<4 | digit
	}
	s.cursor += 4
	return r, nil
}

func (s *scanner) number() (float64, error) {
	start := s.cursor

	if c, _ := s.peek(); c == '-' {
		s.cursor++
	}
	digits := 0
	for s.cursor < len(s.input) {
		c := s.input[s.cursor]
		if c < '0' || c > '9' {
			break
		}
		digits++
		s.cursor++
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: invalid number at offset %d", ErrSyntaxError, start)
	}

	if s.cursor < len(s.input) && s.input[s.cursor] == '.' {
		s.cursor++
		digits = 0
		for s.cursor < len(s.input) && s.input[s.cursor] >= '0' && s.input[s.cursor] <= '9' {
			digits++
			s.cursor++
		}
		if digits == 0 {
			return 0, fmt.Errorf("%w: invalid number at offset %d", ErrSyntaxError, start)
		}
	}

	if s.cursor < len(s.input) && (s.input[s.cursor] == 'e' || s.input[s.cursor] == 'E') {
		s.cursor++
		if s.cursor < len(s.input) && (s.input[s.cursor] == '+' || s.input[s.cursor] == '-') {
			s.cursor++
		}
		digits = 0
		for s.cursor < len(s.input) && s.input[s.cursor] >= '0' && s.input[s.cursor] <= '9' {
			digits++
			s.cursor++
		}
		if digits == 0 {
			return 0, fmt.Errorf("%w: invalid number at offset %d", ErrSyntaxError, start)
		}
	}

	value, err := strconv.ParseFloat(string(s.input[start:s.cursor]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrSyntaxError, s.input[start:s.cursor])
	}
	return value, nil
}
