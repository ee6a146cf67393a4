package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mtkb13/framegen/pkg/topology"
)

func TestParamsKey(t *testing.T) {
	a := topology.Params{Kind: topology.KindWarren, Span: 30, Height: 4, Panels: 6}
	b := topology.Params{Kind: topology.KindWarren, Span: 30, Height: 4, Panels: 6}
	c := topology.Params{Kind: topology.KindWarren, Span: 30, Height: 4, Panels: 7}

	require.Equal(t, ParamsKey(a), ParamsKey(b), "equal parameters share a key")
	require.NotEqual(t, ParamsKey(a), ParamsKey(c), "any field change produces a new key")
	require.Contains(t, ParamsKey(a), "model:")
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("payload"), 0))

	data, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("payload"), data)

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Delete(ctx, "k"), "double delete is not an error")
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok, "expired entries read as misses")
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, c.Clear())

	_, ok, err := c.Get(ctx, "a")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0), "cache stays usable after clear")
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok, "null cache never stores")
	require.NoError(t, c.Delete(ctx, "k"))
	require.NoError(t, c.Close())
}

func TestScopedIsolation(t *testing.T) {
	ctx := context.Background()
	backend, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	defer backend.Close()

	jsonScope := NewScoped(backend, "json")
	svgScope := NewScoped(backend, "svg")

	require.NoError(t, jsonScope.Set(ctx, "k", []byte("json-doc"), 0))
	require.NoError(t, svgScope.Set(ctx, "k", []byte("svg-doc"), 0))

	data, ok, err := jsonScope.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("json-doc"), data)

	data, ok, err = svgScope.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("svg-doc"), data)

	require.NoError(t, jsonScope.Delete(ctx, "k"))
	_, ok, err = svgScope.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok, "deleting in one scope leaves the other")
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("NonRetryableFailsFast", func(t *testing.T) {
		calls := 0
		sentinel := errors.New("fatal")
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)
		require.Equal(t, 1, calls)
	})

	t.Run("RetryableSucceedsSecondTry", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			if calls == 1 {
				return Retryable(errors.New("transient"))
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 2, calls)
	})

	t.Run("CanceledContextStops", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		err := RetryWithBackoff(canceled, func() error {
			return Retryable(errors.New("transient"))
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestHashIsStable(t *testing.T) {
	require.Equal(t, Hash([]byte("x")), Hash([]byte("x")))
	require.NotEqual(t, Hash([]byte("x")), Hash([]byte("y")))
	require.Len(t, Hash([]byte("x")), 64)
}
