// Package storage provides string keyed persistent stores.
package storage

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/anyswap/OpenChain-Wallet/storage Store

// Store a string keyed get/set store
type Store interface {
	// Get returns the value of key, found is false if key is not set
	Get(key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value
	Set(key, value string) error
}
