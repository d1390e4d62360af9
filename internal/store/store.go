// Package store implements the workspace-scoped document layer every
// entity kind is read and written through. Tenancy is an explicit
// Session argument on every call; dispatch goes through a closed kind
// catalog rather than caller-supplied collection names.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rioverde/pipedesk/internal/metrics"
	"github.com/rioverde/pipedesk/internal/sqlite"
)

// Fields is a document as a column-keyed field map.
type Fields map[string]any

// Session carries the caller's resolved workspace. A zero Session
// means the workspace is still pending (signed out or still loading).
type Session struct {
	WorkspaceID string
}

// Resolved reports whether the session carries a workspace.
func (s Session) Resolved() bool {
	return s.WorkspaceID != ""
}

// Filter narrows a List call by field equality.
type Filter struct {
	Field string
	Value string
}

// Eq builds an equality filter.
func Eq(field, value string) Filter {
	return Filter{Field: field, Value: value}
}

// Store provides tenant-scoped CRUD over the catalogued kinds.
type Store struct {
	db     *sqlite.DB
	cache  *queryCache
	logger *slog.Logger
}

// New creates a store with default cache settings.
func New(db *sqlite.DB, logger *slog.Logger) *Store {
	return NewWithCache(db, logger, 0, 0)
}

// NewWithCache creates a store with an explicit cache size and TTL.
func NewWithCache(db *sqlite.DB, logger *slog.Logger, cacheSize int, cacheTTL time.Duration) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:     db,
		cache:  newQueryCache(cacheSize, cacheTTL),
		logger: logger,
	}
}

// List returns every document of the kind owned by the session's
// workspace, narrowed by equality filters. An unresolved session
// yields an empty result, not an error: the caller signals "not
// ready" separately. Results are served from cache until the next
// mutation of the kind or the TTL, so they are eventually consistent.
func (s *Store) List(ctx context.Context, sess Session, kind Kind, filters ...Filter) ([]Fields, error) {
	desc, err := Describe(kind)
	if err != nil {
		return nil, err
	}
	if !sess.Resolved() {
		return nil, nil
	}
	for _, f := range filters {
		if !desc.hasColumn(f.Field) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, f.Field)
		}
	}

	key := listKey(kind, sess.WorkspaceID, filters)
	if cached, ok := s.cache.get(key); ok {
		return cached.([]Fields), nil
	}

	cols := selectColumns(desc)
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE workspace_id = ?",
		strings.Join(cols, ", "), desc.Table,
	)
	args := []any{sess.WorkspaceID}
	for _, f := range filters {
		query += fmt.Sprintf(" AND %s = ?", f.Field)
		args = append(args, f.Value)
	}
	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.ObserveStoreOp(string(kind), "list", "error")
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	var docs []Fields
	for rows.Next() {
		doc, err := scanFields(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", kind, err)
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", kind, err)
	}

	s.cache.set(key, docs)
	metrics.ObserveStoreOp(string(kind), "list", "ok")
	return docs, nil
}

// Get returns one document by id. The lookup itself is not
// pre-filtered by workspace; ownership is re-checked after the fetch
// and a foreign document collapses to ErrNotFound.
func (s *Store) Get(ctx context.Context, sess Session, kind Kind, id string) (Fields, error) {
	desc, err := Describe(kind)
	if err != nil {
		return nil, err
	}
	if !sess.Resolved() || id == "" {
		return nil, ErrNotFound
	}

	key := getKey(kind, sess.WorkspaceID, id)
	if cached, ok := s.cache.get(key); ok {
		return cached.(Fields), nil
	}

	cols := selectColumns(desc)
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ?",
		strings.Join(cols, ", "), desc.Table,
	)
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		metrics.ObserveStoreOp(string(kind), "get", "error")
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", kind, err)
		}
		return nil, ErrNotFound
	}
	doc, err := scanFields(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
	}

	// Post-fetch ownership check. Mandatory and independent of any
	// server-side rule enforcement.
	if owner, _ := doc["workspace_id"].(string); owner != sess.WorkspaceID {
		return nil, ErrNotFound
	}

	s.cache.set(key, doc)
	metrics.ObserveStoreOp(string(kind), "get", "ok")
	return doc, nil
}

// Create inserts a new document stamped with the session workspace
// and server-assigned timestamps, returning the new id. Any
// caller-supplied workspace_id, id or timestamps are discarded: the
// tenant stamp is never client-settable.
func (s *Store) Create(ctx context.Context, sess Session, kind Kind, fields Fields) (string, error) {
	desc, err := Describe(kind)
	if err != nil {
		return "", err
	}
	if !sess.Resolved() {
		return "", ErrUnauthorized
	}

	doc := stripReserved(fields)
	for col, val := range desc.Defaults {
		if _, ok := doc[col]; !ok {
			doc[col] = val
		}
	}
	for col := range doc {
		if !desc.hasColumn(col) {
			return "", fmt.Errorf("%w: unknown field %q", ErrInvalidInput, col)
		}
	}
	if err := desc.Validate(doc, false); err != nil {
		return "", err
	}

	id := uuid.NewString()
	now := timestamp()
	cols := []string{"id", "workspace_id"}
	args := []any{id, sess.WorkspaceID}
	for _, col := range desc.Columns {
		if val, ok := doc[col]; ok {
			cols = append(cols, col)
			args = append(args, storageValue(val))
		}
	}
	cols = append(cols, "created_at", "updated_at")
	args = append(args, now, now)

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		desc.Table, strings.Join(cols, ", "), placeholders(len(cols)),
	)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		metrics.ObserveStoreOp(string(kind), "create", "error")
		return "", fmt.Errorf("failed to create %s: %w", kind, err)
	}

	s.cache.invalidate(kind, sess.WorkspaceID)
	metrics.ObserveStoreOp(string(kind), "create", "ok")
	return id, nil
}

// Update merges the given fields into an existing document and stamps
// a fresh updated_at. Ownership is verified before the write: a
// cross-workspace id is reported as ErrNotFound and nothing is
// written. Attempt-once; no retry.
func (s *Store) Update(ctx context.Context, sess Session, kind Kind, id string, fields Fields) error {
	desc, err := Describe(kind)
	if err != nil {
		return err
	}
	if !sess.Resolved() {
		return ErrUnauthorized
	}

	doc := stripReserved(fields)
	if len(doc) == 0 {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	for col := range doc {
		if !desc.hasColumn(col) {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, col)
		}
	}
	if err := desc.Validate(doc, true); err != nil {
		return err
	}

	// Ownership re-check before writing.
	if _, err := s.Get(ctx, sess, kind, id); err != nil {
		return err
	}

	var sets []string
	var args []any
	for _, col := range desc.Columns {
		if val, ok := doc[col]; ok {
			sets = append(sets, col+" = ?")
			args = append(args, storageValue(val))
		}
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, timestamp(), id, sess.WorkspaceID)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ? AND workspace_id = ?",
		desc.Table, strings.Join(sets, ", "),
	)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		metrics.ObserveStoreOp(string(kind), "update", "error")
		return fmt.Errorf("failed to update %s: %w", kind, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.cache.invalidate(kind, sess.WorkspaceID)
	metrics.ObserveStoreOp(string(kind), "update", "ok")
	return nil
}

// Delete removes a document. Scoped to the session workspace; no
// cascade, dangling references in other kinds are tolerated.
func (s *Store) Delete(ctx context.Context, sess Session, kind Kind, id string) error {
	desc, err := Describe(kind)
	if err != nil {
		return err
	}
	if !sess.Resolved() {
		return ErrUnauthorized
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ? AND workspace_id = ?", desc.Table)
	result, err := s.db.ExecContext(ctx, query, id, sess.WorkspaceID)
	if err != nil {
		metrics.ObserveStoreOp(string(kind), "delete", "error")
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.cache.invalidate(kind, sess.WorkspaceID)
	metrics.ObserveStoreOp(string(kind), "delete", "ok")
	return nil
}

func selectColumns(desc Descriptor) []string {
	cols := make([]string, 0, len(desc.Columns)+4)
	cols = append(cols, "id", "workspace_id")
	cols = append(cols, desc.Columns...)
	cols = append(cols, "created_at", "updated_at")
	return cols
}

func scanFields(rows *sql.Rows, cols []string) (Fields, error) {
	dest := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	doc := make(Fields, len(cols))
	for i, col := range cols {
		switch v := dest[i].(type) {
		case []byte:
			doc[col] = string(v)
		default:
			doc[col] = v
		}
	}
	return doc, nil
}

func stripReserved(fields Fields) Fields {
	doc := make(Fields, len(fields))
	for col, val := range fields {
		switch col {
		case "id", "workspace_id", "created_at", "updated_at":
			continue
		}
		doc[col] = val
	}
	return doc
}

// storageValue flattens list values to JSON text; everything else is
// bound as-is.
func storageValue(v any) any {
	switch v.(type) {
	case []string, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return "[]"
		}
		return string(data)
	default:
		return v
	}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// Timestamps are stored as RFC 3339 text so field maps round-trip
// without driver-specific time handling.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
