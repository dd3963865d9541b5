package endpoint

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/storage"
	"github.com/anyswap/OpenChain-Wallet/storage/mocks"
	"github.com/anyswap/OpenChain-Wallet/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrefix = "v1"

func persisted(t *testing.T, backend storage.Store) map[int64]*types.Endpoint {
	data, found, err := backend.Get(StorageKey(testPrefix))
	require.NoError(t, err)
	require.True(t, found)
	endpoints, err := unmarshalEndpoints(data)
	require.NoError(t, err)
	return endpoints
}

func assertPersistedMatches(t *testing.T, s *Store, backend storage.Store) {
	stored := persisted(t, backend)
	listed := s.List()
	require.Equal(t, len(listed), len(stored))
	for id, ep := range listed {
		require.Contains(t, stored, id)
		assert.Equal(t, ep, *stored[id])
	}
}

func TestAddEndpointOnEmptyStore(t *testing.T) {
	backend := storage.NewMemoryStore()
	s, err := NewStore(backend, testPrefix)
	require.NoError(t, err)
	assert.Empty(t, s.List())
	assert.Equal(t, int64(0), s.NextID())

	ep, err := s.AddEndpoint(&types.EndpointCandidate{RootURL: "https://x/", Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, &types.Endpoint{ID: 0, RootURL: "https://x/", Name: "X"}, ep)

	data, found, err := backend.Get("v1.endpoints")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"0":{"id":0,"rootUrl":"https://x/","name":"X"}}`, data)
}

func TestAddEndpointIDsIncrease(t *testing.T) {
	backend := storage.NewMemoryStore()
	s, err := NewStore(backend, testPrefix)
	require.NoError(t, err)

	first, err := s.AddEndpoint(&types.EndpointCandidate{RootURL: "https://a.example/", Name: "A"})
	require.NoError(t, err)
	assertPersistedMatches(t, s, backend)

	second, err := s.AddEndpoint(&types.EndpointCandidate{RootURL: "https://b.example/", Name: "B"})
	require.NoError(t, err)
	assertPersistedMatches(t, s, backend)

	assert.True(t, second.ID > first.ID)
	assert.Len(t, s.List(), 2)

	got, exist := s.Get(second.ID)
	require.True(t, exist)
	assert.Equal(t, second, got)

	_, exist = s.Get(42)
	assert.False(t, exist)
}

func TestLoadComputesNextID(t *testing.T) {
	backend := storage.NewMemoryStore()
	require.NoError(t, backend.Set("v1.endpoints", `{
		"3": {"id": 3, "rootUrl": "https://three/", "name": "three"},
		"7": {"id": 7, "rootUrl": "https://seven/", "name": "seven"}
	}`))

	s, err := NewStore(backend, testPrefix)
	require.NoError(t, err)
	assert.Len(t, s.List(), 2)
	assert.Equal(t, int64(8), s.NextID())

	ep, err := s.AddEndpoint(&types.EndpointCandidate{RootURL: "https://eight/", Name: "eight"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), ep.ID)
	assertPersistedMatches(t, s, backend)
}

func TestStoresAreVersionNamespaced(t *testing.T) {
	backend := storage.NewMemoryStore()
	v1, err := NewStore(backend, "v1")
	require.NoError(t, err)
	_, err = v1.AddEndpoint(&types.EndpointCandidate{RootURL: "https://x/", Name: "X"})
	require.NoError(t, err)

	v2, err := NewStore(backend, "v2")
	require.NoError(t, err)
	assert.Empty(t, v2.List())
}

func TestLoadMalformed(t *testing.T) {
	malformed := []string{
		`not json`,
		`{"abc": {"id": 0, "rootUrl": "https://x/", "name": "X"}}`,
		`{"1": {"id": 2, "rootUrl": "https://x/", "name": "X"}}`,
		`{"-1": {"id": -1, "rootUrl": "https://x/", "name": "X"}}`,
		`{"0": null}`,
	}
	for _, data := range malformed {
		backend := storage.NewMemoryStore()
		require.NoError(t, backend.Set("v1.endpoints", data))
		_, err := NewStore(backend, testPrefix)
		assert.True(t, errors.Is(err, common.ErrMalformedValue), "data %v: have %v", data, err)
	}
}

func TestAddEndpointPersistFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	backend := mocks.NewMockStore(ctl)
	backend.EXPECT().Get("v1.endpoints").Return("", false, nil).Times(1)
	s, err := NewStore(backend, testPrefix)
	require.NoError(t, err)

	backend.EXPECT().Set("v1.endpoints", gomock.Any()).Return(common.ErrStorage).Times(1)
	_, err = s.AddEndpoint(&types.EndpointCandidate{RootURL: "https://x/", Name: "X"})
	assert.True(t, errors.Is(err, common.ErrStorage))
	assert.Empty(t, s.List())
	assert.Equal(t, int64(0), s.NextID())

	backend.EXPECT().Set("v1.endpoints", gomock.Any()).DoAndReturn(func(key, value string) error {
		var jsonData map[string]*types.Endpoint
		require.NoError(t, json.Unmarshal([]byte(value), &jsonData))
		assert.Len(t, jsonData, 1)
		assert.Contains(t, jsonData, "0")
		return nil
	}).Times(1)
	ep, err := s.AddEndpoint(&types.EndpointCandidate{RootURL: "https://x/", Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), ep.ID)
}

func TestAddEndpointInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	backend := mocks.NewMockStore(ctl)
	backend.EXPECT().Get("v1.endpoints").Return("", false, nil)
	s, err := NewStore(backend, testPrefix)
	require.NoError(t, err)

	invalid := []*types.EndpointCandidate{
		nil,
		{RootURL: "", Name: "empty"},
		{RootURL: "ftp://x/", Name: "scheme"},
		{RootURL: "https://", Name: "no host"},
	}
	for _, candidate := range invalid {
		_, err = s.AddEndpoint(candidate)
		assert.True(t, errors.Is(err, common.ErrInvalidEndpoint), "candidate %v: have %v", candidate, err)
	}
	assert.Equal(t, int64(0), s.NextID())
}

func TestLoadBackendFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	backend := mocks.NewMockStore(ctl)
	backend.EXPECT().Get("v1.endpoints").Return("", false, common.ErrStorage)
	_, err := NewStore(backend, testPrefix)
	assert.True(t, errors.Is(err, common.ErrStorage))
}

func TestConcurrentAddEndpoint(t *testing.T) {
	backend := storage.NewMemoryStore()
	s, err := NewStore(backend, testPrefix)
	require.NoError(t, err)

	const count = 20
	ids := make(chan int64, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ep, err := s.AddEndpoint(&types.EndpointCandidate{RootURL: "https://x/", Name: "X"})
			if err == nil {
				ids <- ep.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicated id %v", id)
		seen[id] = true
	}
	assert.Len(t, seen, count)
	assertPersistedMatches(t, s, backend)
}
