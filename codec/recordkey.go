package codec

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/anyswap/OpenChain-Wallet/common"
)

// RecordType is the type tag in the middle of a record key
type RecordType string

// recognized record types
const (
	TypeAccount RecordType = "ACC"
	TypeData    RecordType = "DATA"
)

// Separator separates path, type and name in a record key
const Separator = ":"

// IsValid is t a recognized tag
func (t RecordType) IsValid() bool {
	switch t {
	case TypeAccount, TypeData:
		return true
	default:
		return false
	}
}

// RecordKey is the encoded key of a ledger record
type RecordKey []byte

// String returns the key text
func (k RecordKey) String() string {
	return string(k)
}

// Hex returns the hex encoding used on the wire
func (k RecordKey) Hex() string {
	return common.ToHex(k)
}

// Equal compares two keys byte by byte
func (k RecordKey) Equal(other RecordKey) bool {
	return bytes.Equal(k, other)
}

// ParsedKey is the structured form of a record key
type ParsedKey struct {
	Path string
	Type RecordType
	Name string
}

// String returns the "<path>:<type>:<name>" text
func (p *ParsedKey) String() string {
	return p.Path + Separator + string(p.Type) + Separator + p.Name
}

// EncodeRecordKey builds the key "<path>:<type>:<name>".
// Path and name must not contain the separator, since the key could not
// be split back unambiguously.
func EncodeRecordKey(path string, recordType RecordType, name string) (RecordKey, error) {
	if !recordType.IsValid() {
		return nil, fmt.Errorf("%w: unknown record type %q", common.ErrInvalidRecordKey, recordType)
	}
	if strings.Contains(path, Separator) {
		return nil, fmt.Errorf("%w: path %q contains %q", common.ErrInvalidRecordKey, path, Separator)
	}
	if strings.Contains(name, Separator) {
		return nil, fmt.Errorf("%w: name %q contains %q", common.ErrInvalidRecordKey, name, Separator)
	}
	return RecordKey(EncodeString(path + Separator + string(recordType) + Separator + name)), nil
}

// EncodeAccount builds the balance key of asset held by account
func EncodeAccount(account, asset string) (RecordKey, error) {
	return EncodeRecordKey(account, TypeAccount, asset)
}

// EncodeData builds the key of the data record name under path
func EncodeData(path, name string) (RecordKey, error) {
	return EncodeRecordKey(path, TypeData, name)
}

// ParseRecordKey splits key into path, type and name
func ParseRecordKey(key RecordKey) (*ParsedKey, error) {
	text, err := DecodeStringBytes(key)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(text, Separator)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: record key %q has %v components", common.ErrMalformedValue, text, len(parts))
	}
	recordType := RecordType(parts[1])
	if !recordType.IsValid() {
		return nil, fmt.Errorf("%w: record key %q has unknown type", common.ErrMalformedValue, text)
	}
	return &ParsedKey{
		Path: parts[0],
		Type: recordType,
		Name: parts[2],
	}, nil
}
