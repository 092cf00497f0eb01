// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/rf-checker/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"
)

// Key-value scopes.
const (
	ScopeSync  = "sync"
	ScopeLocal = "local"
)

const (
	kvTable      = "kv_items"
	upsertSuffix = "ON CONFLICT(scope, item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at"
)

// sqliteKV stores one scope in the kv_items table. Statements run one key
// at a time and outside of a transaction.
type sqliteKV struct {
	db    *DB
	scope string
	now   func() time.Time
}

// NewSQLiteKV returns a [KeyValueStore] for scope backed by db.
func NewSQLiteKV(db *DB, scope string) KeyValueStore {
	return &sqliteKV{db: db, scope: scope, now: time.Now}
}

func (s *sqliteKV) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	log := logger.FromContext(ctx)
	result := make(map[string]json.RawMessage, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	query, args, err := sq.Select("item_key", "item_value").
		From(kvTable).
		Where(sq.And{sq.Eq{"scope": s.scope}, sq.Eq{"item_key": lo.Uniq(keys)}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKV.Get").
			Str("scope", s.scope).
			Strs("keys", keys).
			Msg("failed to query kv items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result[key] = json.RawMessage(value)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "sqliteKV.Get").Str("scope", s.scope).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (s *sqliteKV) Set(ctx context.Context, items map[string]json.RawMessage) error {
	log := logger.FromContext(ctx)
	now := s.now().UTC()

	keys := lo.Keys(items)
	slices.Sort(keys)

	for _, key := range keys {
		query, args, err := sq.Insert(kvTable).
			Columns("scope", "item_key", "item_value", "updated_at").
			Values(s.scope, key, string(items[key]), now).
			Suffix(upsertSuffix).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "sqliteKV.Set").
				Str("scope", s.scope).
				Str("key", key).
				Msg("failed to upsert kv item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (s *sqliteKV) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := sq.Delete(kvTable).
		Where(sq.And{sq.Eq{"scope": s.scope}, sq.Eq{"item_key": lo.Uniq(keys)}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteKV.Remove").
			Str("scope", s.scope).
			Strs("keys", keys).
			Msg("failed to delete kv items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
