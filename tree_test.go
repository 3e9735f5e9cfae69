package dirtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pwasilewski/dirtree"
	"github.com/pwasilewski/dirtree/config"
)

func TestNewTreeStartsEmpty(t *testing.T) {
	tree := dirtree.New()
	got, err := tree.List("/")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestWithLimitsRejectsNamesOverMax(t *testing.T) {
	tree := dirtree.New(dirtree.WithLimits(3, 64))

	require.NoError(t, tree.Create("/abc/"))
	require.ErrorIs(t, tree.Create("/abcd/"), dirtree.ErrInvalidArgument)
}

func TestWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxNameLength = 2

	tree := dirtree.New(dirtree.WithConfig(cfg))
	require.NoError(t, tree.Create("/ab/"))
	require.ErrorIs(t, tree.Create("/abc/"), dirtree.ErrInvalidArgument)
}

func TestWithLogger(t *testing.T) {
	tree := dirtree.New(dirtree.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, tree.Create("/a/"))
}

func TestFreeTearsDownRecursively(t *testing.T) {
	tree := dirtree.New()
	require.NoError(t, tree.Create("/a/"))
	require.NoError(t, tree.Create("/a/b/"))
	require.NoError(t, tree.Create("/a/b/c/"))

	tree.Free()
}
