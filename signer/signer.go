// Package signer signs encoded ledger transactions with secp256k1 ECDSA.
package signer

import (
	"fmt"
	"strings"

	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/types"
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
)

const privateKeyLength = 32

// Key private key material with its public key encoding
type Key struct {
	privateKey     *btcec.PrivateKey
	compressPubKey bool
}

// NewKey wraps a private key, public keys are serialized compressed
func NewKey(privateKey *btcec.PrivateKey) (*Key, error) {
	if privateKey == nil || privateKey.D == nil || privateKey.D.Sign() <= 0 || privateKey.D.Cmp(btcec.S256().N) >= 0 {
		return nil, fmt.Errorf("%w: invalid private key", common.ErrSigning)
	}
	return &Key{privateKey: privateKey, compressPubKey: true}, nil
}

// ParseKey parses a 32 bytes hex private key or a WIF string
func ParseKey(str string) (*Key, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, fmt.Errorf("%w: empty private key", common.ErrSigning)
	}
	if common.IsHex(str) {
		pribs, err := common.FromHex(str)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrSigning, err)
		}
		return KeyFromBytes(pribs)
	}
	wif, err := btcutil.DecodeWIF(str)
	if err != nil {
		return nil, fmt.Errorf("%w: decode wif failed: %v", common.ErrSigning, err)
	}
	key, err := NewKey(wif.PrivKey)
	if err != nil {
		return nil, err
	}
	key.compressPubKey = wif.CompressPubKey
	return key, nil
}

// KeyFromBytes creates a key from a raw 32 bytes scalar
func KeyFromBytes(pribs []byte) (*Key, error) {
	if len(pribs) != privateKeyLength {
		return nil, fmt.Errorf("%w: private key length %v, want %v", common.ErrSigning, len(pribs), privateKeyLength)
	}
	pri, _ := btcec.PrivKeyFromBytes(btcec.S256(), pribs)
	return NewKey(pri)
}

// PrivateKey returns the underlying key
func (k *Key) PrivateKey() *btcec.PrivateKey {
	return k.privateKey
}

// PublicKey returns the serialized public key
func (k *Key) PublicKey() []byte {
	if k.compressPubKey {
		return k.privateKey.PubKey().SerializeCompressed()
	}
	return k.privateKey.PubKey().SerializeUncompressed()
}

// Hash returns SHA256(SHA256(encodedTx))
func Hash(encodedTx []byte) []byte {
	return chainhash.DoubleHashB(encodedTx)
}

// Sign signs the double sha256 hash of encodedTx.
// The signature is DER encoded, the nonce is derived per RFC6979.
func Sign(encodedTx []byte, key *Key) (*types.Signature, error) {
	if key == nil || key.privateKey == nil {
		return nil, fmt.Errorf("%w: no private key", common.ErrSigning)
	}
	hash := Hash(encodedTx)
	sig, err := key.privateKey.Sign(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSigning, err)
	}
	return &types.Signature{
		PublicKey: key.PublicKey(),
		Signature: sig.Serialize(),
	}, nil
}

// Verify checks signature is valid for encodedTx
func Verify(encodedTx []byte, signature *types.Signature) error {
	if signature == nil {
		return fmt.Errorf("%w: no signature", common.ErrSigning)
	}
	pubKey, err := btcec.ParsePubKey(signature.PublicKey, btcec.S256())
	if err != nil {
		return fmt.Errorf("%w: parse public key failed: %v", common.ErrSigning, err)
	}
	sig, err := btcec.ParseDERSignature(signature.Signature, btcec.S256())
	if err != nil {
		return fmt.Errorf("%w: parse signature failed: %v", common.ErrSigning, err)
	}
	if !sig.Verify(Hash(encodedTx), pubKey) {
		return fmt.Errorf("%w: signature verification failed", common.ErrSigning)
	}
	return nil
}
