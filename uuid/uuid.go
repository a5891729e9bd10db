package uuid

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

var ErrInvalidFormat = errors.New("uuid: invalid format")

type UUID [16]byte

// New returns a random (version 4) UUID.
func New() UUID {
	var uuid UUID

	if _, err := rand.Read(uuid[:]); err != nil {
		return uuid
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x40 // Version 4
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // Variant is 10

	return uuid
}

// Parse reads the canonical 8-4-4-4-12 text form.
func Parse(s string) (UUID, error) {
	var uuid UUID

	if len(s) != 36 {
		return uuid, ErrInvalidFormat
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid, ErrInvalidFormat
	}

	for _, segment := range []struct {
		dst  []byte
		text string
	}{
		{uuid[:4], s[:8]},
		{uuid[4:6], s[9:13]},
		{uuid[6:8], s[14:18]},
		{uuid[8:10], s[19:23]},
		{uuid[10:], s[24:]},
	} {
		if _, err := hex.Decode(segment.dst, []byte(segment.text)); err != nil {
			return UUID{}, ErrInvalidFormat
		}
	}

	return uuid, nil
}

func (uuid UUID) String() string {
	var buf [36]byte

	hex.Encode(buf[:], uuid[:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], uuid[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], uuid[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], uuid[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], uuid[10:])

	return string(buf[:])
}

func (uuid UUID) Version() byte {
	return uuid[6] >> 4
}
