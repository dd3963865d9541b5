package leveldb

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase(t *testing.T) {
	dir, err := ioutil.TempDir("", "leveldbtest")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := New(dir, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, dir, db.Path())

	_, err = db.Get([]byte("missing"))
	assert.True(t, IsNotFoundErr(err))

	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	require.NoError(t, db.Close())

	db, err = New(dir, 0, 0)
	require.NoError(t, err)
	defer db.Close()
	value, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}
