package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/anyswap/OpenChain-Wallet/common"
)

// Int64Length is the encoded size of an int64 value
const Int64Length = 8

// EncodeInt64 encodes value as 8 big-endian two's complement bytes
func EncodeInt64(value int64) []byte {
	buf := make([]byte, Int64Length)
	binary.BigEndian.PutUint64(buf, uint64(value))
	return buf
}

// DecodeInt64 consumes exactly 8 bytes from r
func DecodeInt64(r io.Reader) (int64, error) {
	var buf [Int64Length]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return 0, fmt.Errorf("%w: int64 needs %v bytes, got %v", common.ErrMalformedValue, Int64Length, n)
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}
