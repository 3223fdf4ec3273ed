package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaverschoice/supply-engine/engine"
	"github.com/beaverschoice/supply-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func day(s string) engine.Date { return engine.MustParseDate(s) }

func TestAppendAndLoad_RoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	in := engine.Entry{
		ItemName:   "A4 paper",
		Type:       engine.EntryReplenishment,
		Units:      300,
		Amount:     engine.NewMoney(15),
		OccurredOn: day("2025-01-01"),
	}
	saved, err := st.Append(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, engine.EntryID(1), saved.ID)

	entries, err := st.Load(ctx, "A4 paper", day("2025-12-31"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, in.ItemName, got.ItemName)
	assert.Equal(t, in.Type, got.Type)
	assert.Equal(t, in.Units, got.Units)
	assert.True(t, got.Amount.Equal(in.Amount))
	assert.True(t, got.OccurredOn.Equal(in.OccurredOn))
}

func TestLoad_FiltersByItemAndDate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	add := func(item, date string, typ engine.EntryType, units int) {
		t.Helper()
		_, err := st.Append(ctx, engine.Entry{
			ItemName: item, Type: typ, Units: units,
			Amount: engine.NewMoney(1), OccurredOn: day(date),
		})
		require.NoError(t, err)
	}
	add("A4 paper", "2025-01-01", engine.EntryReplenishment, 100)
	add("A4 paper", "2025-03-01", engine.EntrySale, 20)
	add("Cardstock", "2025-01-01", engine.EntryReplenishment, 50)

	entries, err := st.Load(ctx, "A4 paper", day("2025-02-01"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "later entries and other items are excluded")
	assert.Equal(t, 100, entries[0].Units)

	all, err := st.LoadAll(ctx, day("2025-12-31"))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCashOnlyEntry_RoundTrip(t *testing.T) {
	// Cash-only entries persist with NULL item and units and come back
	// as blank-item, zero-unit entries.
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Append(ctx, engine.Entry{
		Type: engine.EntrySale, Amount: engine.NewMoney(50000), OccurredOn: day("2025-01-01"),
	})
	require.NoError(t, err)

	all, err := st.LoadAll(ctx, day("2025-12-31"))
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].CashOnly())
	assert.Zero(t, all[0].Units)
	assert.True(t, all[0].Amount.Equal(engine.NewMoney(50000)))

	// Item-scoped loads never see cash-only entries.
	entries, err := st.Load(ctx, "A4 paper", day("2025-12-31"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(s engine.Store) error {
		_, err := s.Append(ctx, engine.Entry{
			ItemName: "A4 paper", Type: engine.EntryReplenishment,
			Units: 10, Amount: engine.NewMoney(0.50), OccurredOn: day("2025-01-01"),
		})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := st.LoadAll(ctx, day("2025-12-31"))
	require.NoError(t, err)
	assert.Empty(t, all, "rolled-back appends must not surface")
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.WithTx(ctx, func(s engine.Store) error {
		for _, e := range []engine.Entry{
			{ItemName: "A4 paper", Type: engine.EntryReplenishment, Units: 130, Amount: engine.NewMoney(6.50), OccurredOn: day("2025-04-01")},
			{ItemName: "A4 paper", Type: engine.EntrySale, Units: 80, Amount: engine.NewMoney(4), OccurredOn: day("2025-04-01")},
		} {
			if _, err := s.Append(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	all, err := st.LoadAll(ctx, day("2025-12-31"))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID, "the replenishment precedes the sale")
}
