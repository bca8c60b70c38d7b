package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monjauro/app/internal/config"
)

func TestNewFileDriver(t *testing.T) {
	cfg := &config.Config{StoreDriver: "file", DataPath: t.TempDir()}

	s, err := New(cfg)
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*FileStore)
	require.True(t, ok)
}

func TestNewUnknownDriver(t *testing.T) {
	cfg := &config.Config{StoreDriver: "redis"}

	_, err := New(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown store driver")
}
