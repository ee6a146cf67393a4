package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mtkb13/framegen/pkg/topology"
)

func record(t *testing.T, name string, p topology.Params) *Record {
	t.Helper()
	m, err := topology.Generate(p)
	require.NoError(t, err)
	return New(name, p, m)
}

func TestNewRecord(t *testing.T) {
	p := topology.Params{Kind: topology.KindPortal, Span: 6, Height: 4}
	a := record(t, "a", p)
	b := record(t, "b", p)

	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID, "every record gets its own id")
	require.False(t, a.CreatedAt.IsZero())
	require.Equal(t, p, a.Params)
	require.NotNil(t, a.Model)
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	defer st.Close(ctx)

	rec := record(t, "portal", topology.Params{Kind: topology.KindPortal, Span: 6, Height: 4})
	require.NoError(t, st.Save(ctx, rec))

	got, err := st.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec, got)

	_, err = st.Get(ctx, "no-such-id")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Delete(ctx, rec.ID))
	require.ErrorIs(t, st.Delete(ctx, rec.ID), ErrNotFound)
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	defer st.Close(ctx)

	rec := record(t, "first", topology.Params{Kind: topology.KindPortal, Span: 6, Height: 4})
	require.NoError(t, st.Save(ctx, rec))

	renamed := *rec
	renamed.Name = "second"
	require.NoError(t, st.Save(ctx, &renamed))

	got, err := st.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, "second", got.Name)

	list, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestMemoryStoreListOrder(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	defer st.Close(ctx)

	p := topology.Params{Kind: topology.KindPortal, Span: 6, Height: 4}
	older := record(t, "older", p)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := record(t, "newer", p)

	require.NoError(t, st.Save(ctx, older))
	require.NoError(t, st.Save(ctx, newer))

	list, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "newer", list[0].Name)
	require.Equal(t, "older", list[1].Name)
}
