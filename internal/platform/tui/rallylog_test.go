package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tennis/internal/games/tennis"
	"github.com/vovakirdan/tui-tennis/internal/storage"
)

type failingSource struct{}

func (failingSource) Rallies(int) ([]storage.RallyEntry, error) {
	return nil, errors.New("database is closed")
}

func (failingSource) Summary() (*storage.Summary, error) {
	return nil, errors.New("database is closed")
}

func TestRallyLogRows(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	results := []tennis.RallyResult{
		{Rally: 1, Scorer: tennis.SideRight, RightScore: 1, Balls: 2, Speed: 430, Hits: 3, Duration: 12500 * time.Millisecond},
		{Rally: 2, Scorer: tennis.SideLeft, Won: true, Balls: 1, Speed: 400, Duration: 800 * time.Millisecond},
	}
	for _, r := range results {
		if err := store.RecordRally(r); err != nil {
			t.Fatalf("RecordRally() failed: %v", err)
		}
	}

	log := NewRallyLog(DefaultKeyMap(), 80, 24)
	log.Load(store)
	rows := log.Rows()

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	expected := [][]string{
		{"2", "Blue*", "0-0", "1", "0", "400", "0.8s"},
		{"1", "Red", "0-1", "2", "3", "430", "12.5s"},
	}
	for i, want := range expected {
		if strings.Join(rows[i], "|") != strings.Join(want, "|") {
			t.Errorf("row %d = %v, expected %v", i, rows[i], want)
		}
	}

	view := log.View()
	for _, want := range []string{"RALLY LOG", "matches 1-0", "top speed 430"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestRallyLogEmptyAndFailing(t *testing.T) {
	log := NewRallyLog(DefaultKeyMap(), 80, 24)

	log.Load(nil)
	if !strings.Contains(log.View(), "No rallies played yet.") {
		t.Error("expected the empty message without a source")
	}

	log.Load(failingSource{})
	if !strings.Contains(log.View(), "database is closed") {
		t.Error("expected the load error in the view")
	}
	if len(log.Rows()) != 0 {
		t.Error("failing source produced rows")
	}
}
