// Package endpoint keeps the set of ledger endpoints the wallet is connected to.
package endpoint

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/log"
	"github.com/anyswap/OpenChain-Wallet/storage"
	"github.com/anyswap/OpenChain-Wallet/types"
)

const endpointsKeySuffix = ".endpoints"

// StorageKey returns the persisted key of the endpoints under versionPrefix
func StorageKey(versionPrefix string) string {
	return versionPrefix + endpointsKeySuffix
}

// Store endpoints indexed by id, persisted as one json document
type Store struct {
	mu        sync.RWMutex
	backend   storage.Store
	key       string
	endpoints map[int64]*types.Endpoint
	nextID    int64
}

// NewStore creates a store and loads the persisted endpoints
func NewStore(backend storage.Store, versionPrefix string) (*Store, error) {
	s := &Store{
		backend: backend,
		key:     StorageKey(versionPrefix),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in memory endpoints with the persisted ones
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, found, err := s.backend.Get(s.key)
	if err != nil {
		return err
	}
	endpoints := make(map[int64]*types.Endpoint)
	var nextID int64
	if found && data != "" {
		endpoints, err = unmarshalEndpoints(data)
		if err != nil {
			return err
		}
		for id := range endpoints {
			if id >= nextID {
				nextID = id + 1
			}
		}
	}
	s.endpoints = endpoints
	s.nextID = nextID
	log.Info("load endpoints success", "key", s.key, "count", len(endpoints), "nextID", nextID)
	return nil
}

// AddEndpoint assigns the next id to candidate and persists all endpoints.
// Nothing changes if persisting fails.
func (s *Store) AddEndpoint(candidate *types.EndpointCandidate) (*types.Endpoint, error) {
	if candidate == nil {
		return nil, fmt.Errorf("%w: no endpoint", common.ErrInvalidEndpoint)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newEndpoint, err := types.NewEndpoint(s.nextID, candidate.RootURL, candidate.Name)
	if err != nil {
		return nil, err
	}
	endpoints := make(map[int64]*types.Endpoint, len(s.endpoints)+1)
	for id, ep := range s.endpoints {
		endpoints[id] = ep
	}
	endpoints[newEndpoint.ID] = newEndpoint

	data, err := marshalEndpoints(endpoints)
	if err != nil {
		return nil, err
	}
	if err = s.backend.Set(s.key, data); err != nil {
		log.Warn("save endpoints failed", "key", s.key, "err", err)
		return nil, err
	}
	s.endpoints = endpoints
	s.nextID++
	log.Info("add endpoint success", "id", newEndpoint.ID, "rootUrl", newEndpoint.RootURL, "name", newEndpoint.Name)

	result := *newEndpoint
	return &result, nil
}

// List returns a snapshot of all endpoints
func (s *Store) List() map[int64]types.Endpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int64]types.Endpoint, len(s.endpoints))
	for id, ep := range s.endpoints {
		result[id] = *ep
	}
	return result
}

// Get returns the endpoint with id
func (s *Store) Get(id int64) (*types.Endpoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ep, exist := s.endpoints[id]
	if !exist {
		return nil, false
	}
	result := *ep
	return &result, true
}

// NextID returns the id the next added endpoint will get
func (s *Store) NextID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

func marshalEndpoints(endpoints map[int64]*types.Endpoint) (string, error) {
	jsonData := make(map[string]*types.Endpoint, len(endpoints))
	for id, ep := range endpoints {
		jsonData[strconv.FormatInt(id, 10)] = ep
	}
	bs, err := json.Marshal(jsonData)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func unmarshalEndpoints(data string) (map[int64]*types.Endpoint, error) {
	var jsonData map[string]*types.Endpoint
	if err := json.Unmarshal([]byte(data), &jsonData); err != nil {
		return nil, fmt.Errorf("%w: stored endpoints: %v", common.ErrMalformedValue, err)
	}
	endpoints := make(map[int64]*types.Endpoint, len(jsonData))
	for key, ep := range jsonData {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("%w: stored endpoint id %q", common.ErrMalformedValue, key)
		}
		if ep == nil || ep.ID != id {
			return nil, fmt.Errorf("%w: stored endpoint %q has mismatched id", common.ErrMalformedValue, key)
		}
		endpoints[id] = ep
	}
	return endpoints, nil
}
