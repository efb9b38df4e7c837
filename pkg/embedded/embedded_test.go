package embedded

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileBeforeInit(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/gravityflip.yaml")
	assert.True(t, errors.Is(err, ErrNotInitialized))
	assert.False(t, Exists("data/gravityflip.yaml"))
}

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/gravityflip.yaml": &fstest.MapFile{Data: []byte("seed: 7\n")},
	})
	t.Cleanup(func() { Init(nil) })

	require.True(t, IsInitialized())

	data, err := ReadFile("./data/gravityflip.yaml")
	require.NoError(t, err)
	assert.Equal(t, "seed: 7\n", string(data))

	assert.True(t, Exists("data/gravityflip.yaml"))
	assert.False(t, Exists("data/missing.yaml"))

	// 只允许访问 data/ 目录
	_, err = ReadFile("assets/gravityflip.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource path prefix")
}
