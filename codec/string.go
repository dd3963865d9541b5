package codec

import (
	"fmt"
	"io"
	"io/ioutil"
	"unicode/utf8"

	"github.com/anyswap/OpenChain-Wallet/common"
)

// EncodeString returns the UTF-8 bytes of value, without prefix or terminator
func EncodeString(value string) []byte {
	return []byte(value)
}

// DecodeString consumes all remaining bytes of r as UTF-8 text
func DecodeString(r io.Reader) (string, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: read string failed: %v", common.ErrMalformedValue, err)
	}
	return DecodeStringBytes(data)
}

// DecodeStringBytes decodes data as UTF-8 text
func DecodeStringBytes(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid utf8 string", common.ErrMalformedValue)
	}
	return string(data), nil
}
