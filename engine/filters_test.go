package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/lumoplay/usagedash/dataset"
)

// ============================================================================
// FILTER TESTS
// ============================================================================

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func session(date time.Time, game, device, area string, minutes float64) dataset.Session {
	return dataset.Session{
		Date:            date,
		Month:           date.Month().String(),
		MonthNum:        int(date.Month()),
		Game:            game,
		Device:          device,
		Area:            area,
		DurationMinutes: minutes,
	}
}

func sampleTable() *dataset.Table {
	return &dataset.Table{
		Columns: []string{"date", "game", "device", "area", "duration_minutes"},
		Sessions: []dataset.Session{
			session(day(2025, time.January, 5), "Tetris", "Bioness Left 1", "Gym", 30),
			session(day(2025, time.March, 10), "Beat Saber", "Nintendo Switch", "Therapy Room", 60),
			session(day(2025, time.March, 12), "Tetris", "Bioness Right 2", "Gym", 90),
			session(day(2025, time.December, 20), "Beat Saber", "Bioness Left 1", "Gym", 45),
		},
	}
}

func TestFilterDefaultConstraintsKeepEverything(t *testing.T) {
	table := sampleTable()
	got := Filter(table, DefaultConstraints(table))
	if got.Len() != table.Len() {
		t.Errorf("Len = %d, want %d", got.Len(), table.Len())
	}
}

func TestFilterDateRangeInclusive(t *testing.T) {
	table := sampleTable()
	c := DefaultConstraints(table)
	c.Start = day(2025, time.March, 10)
	c.End = day(2025, time.March, 12)

	got := Filter(table, c)
	if got.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (both boundary days included)", got.Len())
	}
	if got.Sessions[0].Game != "Beat Saber" || got.Sessions[1].Game != "Tetris" {
		t.Errorf("unexpected rows: %+v", got.Sessions)
	}
}

func TestFilterIgnoresTimeOfDay(t *testing.T) {
	table := sampleTable()
	table.Sessions[1].Date = time.Date(2025, time.March, 10, 23, 45, 0, 0, time.UTC)

	c := DefaultConstraints(table)
	c.Start = day(2025, time.March, 10)
	c.End = day(2025, time.March, 10)

	if got := Filter(table, c); got.Len() != 1 {
		t.Errorf("Len = %d, want 1 (same calendar day matches)", got.Len())
	}
}

func TestFilterCategoricalAllowLists(t *testing.T) {
	table := sampleTable()
	c := DefaultConstraints(table)
	c.Games = []string{"Tetris"}
	c.Areas = []string{"Gym"}

	got := Filter(table, c)
	if got.Len() != 2 {
		t.Fatalf("Len = %d, want 2", got.Len())
	}
	for _, s := range got.Sessions {
		if s.Game != "Tetris" || s.Area != "Gym" {
			t.Errorf("row %+v escaped the filter", s)
		}
	}
}

func TestFilterEmptyAllowListMatchesNothing(t *testing.T) {
	table := sampleTable()
	c := DefaultConstraints(table)
	c.Devices = nil

	if got := Filter(table, c); got.Len() != 0 {
		t.Errorf("Len = %d, want 0 (empty allow-list is vacuous)", got.Len())
	}
}

func TestFilterSkipsAbsentFields(t *testing.T) {
	// A source without an area column produces sessions with empty areas;
	// the area allow-list must not apply to them.
	table := sampleTable()
	for i := range table.Sessions {
		table.Sessions[i].Area = ""
	}

	if got := Filter(table, DefaultConstraints(table)); got.Len() != table.Len() {
		t.Errorf("Len = %d, want %d (empty areas are unconstrained)", got.Len(), table.Len())
	}
}

func TestFilterPreservesRowOrder(t *testing.T) {
	table := sampleTable()
	c := DefaultConstraints(table)
	c.Games = []string{"Beat Saber"}

	got := Filter(table, c)
	if got.Len() != 2 {
		t.Fatalf("Len = %d, want 2", got.Len())
	}
	if !got.Sessions[0].Date.Before(got.Sessions[1].Date) {
		t.Error("rows reordered by filter")
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	table := sampleTable()
	c := DefaultConstraints(table)
	c.Games = []string{"Tetris"}
	c.End = day(2025, time.June, 30)

	once := Filter(table, c)
	twice := Filter(once, c)
	if !reflect.DeepEqual(once.Sessions, twice.Sessions) {
		t.Error("filtering a filtered table with the same constraints changed it")
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	table := sampleTable()
	before := make([]dataset.Session, len(table.Sessions))
	copy(before, table.Sessions)

	c := DefaultConstraints(table)
	c.Games = []string{"Tetris"}
	Filter(table, c)

	if !reflect.DeepEqual(before, table.Sessions) {
		t.Error("Filter mutated its input table")
	}
}
