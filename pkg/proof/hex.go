package proof

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// decodeHex strips an optional 0x/0X prefix and decodes the remaining
// hex string. Errors from a malformed string carry the position of the
// offending character, per spec.md §6.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	b, err := hex.DecodeString(s)
	if err != nil {
		var invalidByte hex.InvalidByteError
		if ok := asInvalidByteError(err, &invalidByte); ok {
			return nil, fmt.Errorf("invalid hex character %q at position %d", rune(invalidByte), indexOfInvalidByte(s, byte(invalidByte)))
		}
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return b, nil
}

// decodeHexExact decodes s and requires the result to be exactly
// wantLen bytes.
func decodeHexExact(s string, wantLen int) ([]byte, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != wantLen {
		return nil, fmt.Errorf("expected %d bytes, got %d bytes", wantLen, len(b))
	}
	return b, nil
}

func asInvalidByteError(err error, out *hex.InvalidByteError) bool {
	ibe, ok := err.(hex.InvalidByteError)
	if ok {
		*out = ibe
	}
	return ok
}

func indexOfInvalidByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
