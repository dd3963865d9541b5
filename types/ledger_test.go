package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEndpoint(t *testing.T) {
	ep, err := NewEndpoint(0, "https://x/", "X")
	require.NoError(t, err)
	assert.Equal(t, &Endpoint{ID: 0, RootURL: "https://x/", Name: "X"}, ep)

	bs, err := json.Marshal(ep)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":0,"rootUrl":"https://x/","name":"X"}`, string(bs))

	_, err = NewEndpoint(-1, "https://x/", "X")
	assert.True(t, errors.Is(err, common.ErrInvalidEndpoint))
	_, err = NewEndpoint(1, "x", "X")
	assert.True(t, errors.Is(err, common.ErrInvalidEndpoint))
}

func TestEndpointURL(t *testing.T) {
	ep := &Endpoint{RootURL: "https://ledger.example/api/"}
	assert.Equal(t, "https://ledger.example/api/value", ep.URL("value"))
	assert.Equal(t, "https://ledger.example/api/query/account", ep.URL("/query/account"))

	ep.RootURL = "https://ledger.example/api"
	assert.Equal(t, "https://ledger.example/api/info", ep.URL("info"))
}

func TestLedgerInfoCandidate(t *testing.T) {
	var info LedgerInfo
	require.NoError(t, json.Unmarshal([]byte(`{"root_url":"https://reported/","name":"Reported","tos":"terms"}`), &info))
	assert.Equal(t, "terms", info.TermsOfService)
	assert.Equal(t, &EndpointCandidate{RootURL: "https://reported/", Name: "Reported"}, info.Candidate("https://queried/"))

	info.RootURL = ""
	assert.Equal(t, "https://queried/", info.Candidate("https://queried/").RootURL)
}

func TestNewAccountRecord(t *testing.T) {
	record, err := NewAccountRecord("alice", "USD", []byte{1}, 100)
	require.NoError(t, err)
	assert.Equal(t, "alice:ACC:USD", record.Key.String())
	assert.Equal(t, int64(100), record.Balance)

	_, err = NewAccountRecord("al:ice", "USD", nil, 0)
	assert.True(t, errors.Is(err, common.ErrInvalidRecordKey))
}

func TestVersionedValueIsUnset(t *testing.T) {
	assert.True(t, (&VersionedValue{}).IsUnset())
	assert.True(t, (&VersionedValue{Value: []byte{}}).IsUnset())
	assert.False(t, (&VersionedValue{Value: []byte{0}}).IsUnset())
}
