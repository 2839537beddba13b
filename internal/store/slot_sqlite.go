// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	slotsTable     = "slots"
	maxSaveRetries = 3
	retryBackoff   = 50 * time.Millisecond
)

// sqliteSlot stores the blob as one row of the slots table keyed by the
// configured slot key.
type sqliteSlot struct {
	db  *DB
	key string
	sb  sq.StatementBuilderType
}

// NewSQLiteSlot returns a [Slot] backed by the slots table of db. The
// schema must already be migrated.
func NewSQLiteSlot(db *DB, key string) Slot {
	return &sqliteSlot{
		db:  db,
		key: key,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (s *sqliteSlot) Load(ctx context.Context) ([]byte, error) {
	query, args, err := s.sb.Select("payload").
		From(slotsTable).
		Where(sq.Eq{"slot_key": s.key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var payload []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqliteSlot.Load").Str("key", s.key).Msg("failed to select slot")
		return nil, fmt.Errorf("select slot: %w", err)
	}

	return payload, nil
}

func (s *sqliteSlot) Save(ctx context.Context, data []byte) error {
	if data == nil {
		data = []byte{}
	}

	query, args, err := s.sb.Insert(slotsTable).
		Columns("slot_key", "payload", "updated_at").
		Values(s.key, data, time.Now().UTC()).
		Suffix("ON CONFLICT(slot_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	return s.execWithRetry(ctx, "sqliteSlot.Save", query, args...)
}

func (s *sqliteSlot) Clear(ctx context.Context) error {
	query, args, err := s.sb.Delete(slotsTable).
		Where(sq.Eq{"slot_key": s.key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	return s.execWithRetry(ctx, "sqliteSlot.Clear", query, args...)
}

// execWithRetry runs a write statement, repeating it while the classifier
// reports the failure as [Retryable].
func (s *sqliteSlot) execWithRetry(ctx context.Context, fn, query string, args ...any) error {
	var err error
	for attempt := 1; attempt <= maxSaveRetries; attempt++ {
		if _, err = s.db.ExecContext(ctx, query, args...); err == nil {
			return nil
		}

		switch s.db.errorClassificator.Classify(err) {
		case OutOfSpace:
			s.db.logger.Err(err).Str("func", fn).Msg("database is full")
			return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		case NonRetryable:
			s.db.logger.Err(err).Str("func", fn).Msg("write failed")
			return fmt.Errorf("exec %s: %w", fn, err)
		}

		s.db.logger.Warn().Err(err).Str("func", fn).Int("attempt", attempt).Msg("database busy, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("exec %s after %d attempts: %w", fn, maxSaveRetries, err)
}
