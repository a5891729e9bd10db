package json

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Marshal serializes a generic value built from the types Decode produces
// (plus the native integer kinds). Object keys come out sorted so the
// encoding is deterministic.
func Marshal(v any) ([]byte, error) {
	return appendValue(make([]byte, 0, 64), v)
}

func appendValue(buf []byte, v any) ([]byte, error) {
	switch value := v.(type) {
	case nil:
		return append(buf, "null"...), nil
	case bool:
		if value {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case string:
		return appendString(buf, value), nil
	case float64:
		return appendFloat(buf, value)
	case float32:
		return appendFloat(buf, float64(value))
	case int:
		return strconv.AppendInt(buf, int64(value), 10), nil
	case int8:
		return strconv.AppendInt(buf, int64(value), 10), nil
	case int16:
		return strconv.AppendInt(buf, int64(value), 10), nil
	case int32:
		return strconv.AppendInt(buf, int64(value), 10), nil
	case int64:
		return strconv.AppendInt(buf, value, 10), nil
	case uint:
		return strconv.AppendUint(buf, uint64(value), 10), nil
	case uint8:
		return strconv.AppendUint(buf, uint64(value), 10), nil
	case uint16:
		return strconv.AppendUint(buf, uint64(value), 10), nil
	case uint32:
		return strconv.AppendUint(buf, uint64(value), 10), nil
	case uint64:
		return strconv.AppendUint(buf, value, 10), nil
	case []any:
		return appendArray(buf, value)
	case map[string]any:
		return appendObject(buf, value)
	}
	return nil, fmt.Errorf("json: unsupported type %T", v)
}

func appendFloat(buf []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("json: unsupported value %v", f)
	}
	return strconv.AppendFloat(buf, f, 'g', -1, 64), nil
}

func appendArray(buf []byte, array []any) ([]byte, error) {
	buf = append(buf, '[')
	for i, element := range array {
		if i > 0 {
			buf = append(buf, ',')
		}
		var err error
		buf, err = appendValue(buf, element)
		if err != nil {
			return nil, err
		}
	}
	return append(buf, ']'), nil
}

func appendObject(buf []byte, object map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buf = append(buf, '{')
	for i, key := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendString(buf, key)
		buf = append(buf, ':')
		var err error
		buf, err = appendValue(buf, object[key])
		if err != nil {
			return nil, err
		}
	}
	return append(buf, '}'), nil
}

const hexDigits = "0123456789abcdef"

func appendString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			buf = append(buf, '\\', '"')
		case c == '\\':
			buf = append(buf, '\\', '\\')
		case c == '\n':
			buf = append(buf, '\\', 'n')
		case c == '\r':
			buf = append(buf, '\\', 'r')
		case c == '\t':
			buf = append(buf, '\\', 't')
		case c == '\b':
			buf = append(buf, '\\', 'b')
		case c == '\f':
			buf = append(buf, '\\', 'f')
		case c < 0x20:
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		default:
			// UTF-8 passes through untouched.
			buf = append(buf, c)
		}
	}
	return append(buf, '"')
}
