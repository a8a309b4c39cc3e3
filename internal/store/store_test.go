package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='session_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "session_events" {
		t.Errorf("table name = %q, want 'session_events'", name)
	}
}

func TestOpen_FileDatabaseReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionStart}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	totals, err := s.EventRepo().Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Sessions != 1 {
		t.Errorf("sessions = %d, want 1", totals.Sessions)
	}
}

func TestRecentSessions_FoldsEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo().(*eventRepo)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	events := []SessionEventData{
		{SessionID: "old", Action: ActionStart},
		{SessionID: "old", Action: ActionFetched, Level: "A1", WordsFetched: 50},
		{SessionID: "old", Action: ActionAbandoned, Level: "A1", WordsFetched: 50, WordsDecided: 3, WordsAccepted: 2},
		{SessionID: "new", Action: ActionStart},
		{SessionID: "new", Action: ActionFetched, Level: "B2", WordsFetched: 12},
		{SessionID: "new", Action: ActionSaved, Level: "B2", WordsFetched: 12, WordsDecided: 12, WordsAccepted: 7, WordsSaved: 7},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %+v: %v", e, err)
		}
	}

	got, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("sessions = %d, want 2", len(got))
	}

	first := got[0]
	if first.SessionID != "new" || first.Outcome != ActionSaved || first.Level != "B2" {
		t.Errorf("first = %+v", first)
	}
	if first.Fetched != 12 || first.Accepted != 7 || first.Saved != 7 {
		t.Errorf("first counts = %+v", first)
	}
	if !first.Started.Equal(base.Add(4*time.Minute)) || !first.Ended.Equal(base.Add(6*time.Minute)) {
		t.Errorf("first times = %v .. %v", first.Started, first.Ended)
	}

	second := got[1]
	if second.SessionID != "old" || second.Outcome != ActionAbandoned || second.Accepted != 2 {
		t.Errorf("second = %+v", second)
	}

	limited, err := repo.RecentSessions(ctx, 1)
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "new" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestRecentSessions_Empty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.EventRepo().RecentSessions(context.Background(), 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("sessions = %d, want 0", len(got))
	}
}

func TestTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []SessionEventData{
		{SessionID: "a", Action: ActionStart},
		{SessionID: "a", Action: ActionSaved, WordsSaved: 4},
		{SessionID: "b", Action: ActionStart},
		{SessionID: "b", Action: ActionDiscarded},
		{SessionID: "c", Action: ActionStart},
		{SessionID: "c", Action: ActionSaved, WordsSaved: 6},
	} {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	want := Totals{Sessions: 3, Saves: 2, WordsSaved: 10}
	if got != want {
		t.Errorf("totals = %+v, want %+v", got, want)
	}
}
