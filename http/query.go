package http

import (
	"errors"
	"strings"
)

var ErrInvalidEscape = errors.New("http: invalid percent escape")

// Param is one decoded key/value pair from a query string or form body.
type Param struct {
	Key   string
	Value string
}

// Values keeps query and form parameters in the order they appeared on the
// wire. Duplicate keys stay as separate entries; Get returns the first one.
type Values []Param

func (v Values) Get(key string) (string, bool) {
	for _, param := range v {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

func (v Values) Has(key string) bool {
	_, found := v.Get(key)
	return found
}

// All returns every value recorded for key, in appearance order.
func (v Values) All(key string) []string {
	var values []string
	for _, param := range v {
		if param.Key == key {
			values = append(values, param.Value)
		}
	}
	return values
}

// ParseQuery decodes a raw query string (the text after '?', without the
// '?') into ordered key/value pairs. Both keys and values are
// percent-decoded as UTF-8 byte sequences and '+' decodes to a space, so the
// same routine serves application/x-www-form-urlencoded bodies. A pair
// without '=' yields an empty value. An empty input yields nil.
func ParseQuery(raw string) (Values, error) {
	if raw == "" {
		return nil, nil
	}

	var values Values
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		key := pair
		value := ""
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
			value = pair[i+1:]
		}

		decodedKey, err := unescape(key, true)
		if err != nil {
			return nil, err
		}
		decodedValue, err := unescape(value, true)
		if err != nil {
			return nil, err
		}

		values = append(values, Param{Key: decodedKey, Value: decodedValue})
	}

	return values, nil
}

// unescape percent-decodes s byte by byte. Multi-byte escape runs come out
// as the UTF-8 bytes they encode, so non-ASCII text survives intact. When
// plusAsSpace is set, '+' decodes to a space (query and form convention);
// path segments keep '+' literal.
func unescape(s string, plusAsSpace bool) (string, error) {
	if !strings.ContainsAny(s, "%+") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%':
			if i+2 >= len(s) {
				return "", ErrInvalidEscape
			}
			hi := hexToByte(s[i+1])
			lo := hexToByte(s[i+2])
			if hi == invalidHex || lo == invalidHex {
				return "", ErrInvalidEscape
			}
			b.WriteByte(hi<<4 | lo)
			i += 2
		case s[i] == '+' && plusAsSpace:
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
