package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionEventsTable = "session_events"

var sessionEventColumns = []string{
	"sequence", "timestamp", "session_id", "action", "level",
	"words_fetched", "words_decided", "words_accepted", "words_saved", "error",
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args, err := sq.Insert(sessionEventsTable).
		Columns(sessionEventColumns...).
		Values(
			seqNum, r.clock().UTC().UnixMilli(), data.SessionID, data.Action, data.Level,
			data.WordsFetched, data.WordsDecided, data.WordsAccepted, data.WordsSaved, data.Error,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	idQuery := sq.Select("session_id", "MAX(sequence) AS last_seq").
		From(sessionEventsTable).
		GroupBy("session_id").
		OrderBy("last_seq DESC")
	if limit > 0 {
		idQuery = idQuery.Limit(uint64(limit))
	}

	query, args, err := idQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build session query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		var last int64
		if err := rows.Scan(&id, &last); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan session: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err = sq.Select(sessionEventColumns...).
		From(sessionEventsTable).
		Where(sq.Eq{"session_id": ids}).
		OrderBy("sequence ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build event query: %w", err)
	}
	rows, err = r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*SessionRecord, len(ids))
	for rows.Next() {
		var (
			seqNum, ts int64
			e          SessionEventData
		)
		if err := rows.Scan(&seqNum, &ts, &e.SessionID, &e.Action, &e.Level,
			&e.WordsFetched, &e.WordsDecided, &e.WordsAccepted, &e.WordsSaved, &e.Error); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		rec, ok := byID[e.SessionID]
		if !ok {
			rec = &SessionRecord{SessionID: e.SessionID, Started: time.UnixMilli(ts).UTC()}
			byID[e.SessionID] = rec
		}
		foldEvent(rec, e, time.UnixMilli(ts).UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	records := make([]SessionRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := byID[id]; ok {
			records = append(records, *rec)
		}
	}
	return records, nil
}

func foldEvent(rec *SessionRecord, e SessionEventData, at time.Time) {
	rec.Ended = at
	rec.Outcome = e.Action
	if e.Level != "" {
		rec.Level = e.Level
	}
	rec.Fetched = max(rec.Fetched, e.WordsFetched)
	rec.Accepted = max(rec.Accepted, e.WordsAccepted)
	rec.Saved = max(rec.Saved, e.WordsSaved)
}

func (r *eventRepo) Totals(ctx context.Context) (Totals, error) {
	query, args, err := sq.Select("COUNT(DISTINCT session_id)").
		Column(sq.Expr("COALESCE(SUM(CASE WHEN action = ? THEN 1 ELSE 0 END), 0)", ActionSaved)).
		Column(sq.Expr("COALESCE(SUM(CASE WHEN action = ? THEN words_saved ELSE 0 END), 0)", ActionSaved)).
		From(sessionEventsTable).
		ToSql()
	if err != nil {
		return Totals{}, fmt.Errorf("build totals query: %w", err)
	}

	var t Totals
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.Sessions, &t.Saves, &t.WordsSaved); err != nil {
		return Totals{}, fmt.Errorf("query totals: %w", err)
	}
	return t, nil
}
