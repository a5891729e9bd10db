package http

import "errors"

const invalidHex = 255

func hexToByte(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return invalidHex
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, errors.New("invalid number")
	}
	var n int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errors.New("invalid number")
		}
		n = n*10 + int(c-'0')
		if n > MaxRequestSize {
			return 0, errors.New("number too large")
		}
	}
	return n, nil
}

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".htm":  "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".txt":  "text/plain; charset=utf-8",
	".xml":  "application/xml",
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".webp": "image/webp",
}

// GetMimeType maps a file name to a content type by extension. Unknown
// extensions fall back to application/octet-stream.
func GetMimeType(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '/' {
			break
		}
		if filename[i] == '.' {
			if mime, found := mimeTypes[lower(filename[i:])]; found {
				return mime
			}
			break
		}
	}
	return "application/octet-stream"
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

var validMethods = []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "CONNECT", "OPTIONS", "TRACE"}

// ValidateMethod reports whether method is a known HTTP request method.
func ValidateMethod(method string) bool {
	for _, m := range validMethods {
		if m == method {
			return true
		}
	}
	return false
}
