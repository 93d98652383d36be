//go:build unit

package reservation_test

import (
	"testing"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Run("keeps seating tables, sorts by number and flags overlaps", func(t *testing.T) {
		tables := []table.Table{
			{ID: table.NewTableID("1"), Number: 2, Capacity: 4},
			{ID: table.NewTableID("2"), Number: 1, Capacity: 2},
		}
		slots := []reservation.Slot{{TableID: table.NewTableID("1"), Time: 600}}

		got := reservation.Filter(tables, slots, 600, 2, serviceDuration)

		want := []table.Availability{
			{ID: table.NewTableID("2"), Number: 1, Capacity: 2, Available: true},
			{ID: table.NewTableID("1"), Number: 2, Capacity: 4, Available: false},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Filter mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tables below capacity never appear", func(t *testing.T) {
		tables := []table.Table{
			{ID: table.NewTableID("1"), Number: 1, Capacity: 2},
			{ID: table.NewTableID("2"), Number: 2, Capacity: 6},
		}
		slots := []reservation.Slot{{TableID: table.NewTableID("1"), Time: 900}}

		got := reservation.Filter(tables, slots, 600, 4, serviceDuration)

		require.Len(t, got, 1)
		assert.Equal(t, table.NewTableID("2"), got[0].ID)
		assert.True(t, got[0].Available)
	})

	t.Run("empty, not nil, when nothing seats the party", func(t *testing.T) {
		tables := []table.Table{{ID: table.NewTableID("1"), Number: 1, Capacity: 2}}

		got := reservation.Filter(tables, nil, 600, 8, serviceDuration)

		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("only overlapping slots of the same table count", func(t *testing.T) {
		tables := []table.Table{
			{ID: table.NewTableID("1"), Number: 1, Capacity: 4},
			{ID: table.NewTableID("2"), Number: 2, Capacity: 4},
		}
		slots := []reservation.Slot{
			{TableID: table.NewTableID("1"), Time: 690},
			{TableID: table.NewTableID("1"), Time: 509},
			{TableID: table.NewTableID("2"), Time: 650},
			{TableID: table.NewTableID("9"), Time: 600},
		}

		got := reservation.Filter(tables, slots, 600, 1, serviceDuration)

		want := []table.Availability{
			{ID: table.NewTableID("1"), Number: 1, Capacity: 4, Available: true},
			{ID: table.NewTableID("2"), Number: 2, Capacity: 4, Available: false},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Filter mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("equal numbers keep input order", func(t *testing.T) {
		tables := []table.Table{
			{ID: table.NewTableID("b"), Number: 3, Capacity: 4},
			{ID: table.NewTableID("a"), Number: 3, Capacity: 4},
			{ID: table.NewTableID("c"), Number: 1, Capacity: 4},
		}

		got := reservation.Filter(tables, nil, 600, 1, serviceDuration)

		ids := []table.TableID{got[0].ID, got[1].ID, got[2].ID}
		assert.Equal(t, []table.TableID{table.NewTableID("c"), table.NewTableID("b"), table.NewTableID("a")}, ids)
	})
}

func TestOnDate(t *testing.T) {
	slots := []reservation.Slot{
		{TableID: table.NewTableID("1"), Date: "2026-05-01", Time: 600},
		{TableID: table.NewTableID("1"), Date: "2026-05-02", Time: 600},
		{TableID: table.NewTableID("2"), Time: 720},
	}

	got := reservation.OnDate(slots, "2026-05-01")

	want := []reservation.Slot{
		{TableID: table.NewTableID("1"), Date: "2026-05-01", Time: 600},
		{TableID: table.NewTableID("2"), Time: 720},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OnDate mismatch (-want +got):\n%s", diff)
	}
}
