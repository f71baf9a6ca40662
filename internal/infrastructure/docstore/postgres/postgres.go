// Package postgres implements the document store over a single JSONB
// table:
//
//	CREATE TABLE documents (
//	    collection text  NOT NULL,
//	    id         text  NOT NULL,
//	    fields     jsonb NOT NULL,
//	    PRIMARY KEY (collection, id)
//	);
//	CREATE UNIQUE INDEX documents_users_email_idx
//	    ON documents ((fields->>'email')) WHERE collection = 'users';
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"webcars-api/internal/infrastructure/db/postgres"
	"webcars-api/internal/infrastructure/docstore"
)

// DB is the subset of pgxpool.Pool the store uses; pgxmock satisfies it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db DB
}

func New(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.NewString()

	b, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode document fields: %w", err)
	}

	if _, err = s.db.Exec(ctx, InsertDocument, collection, id, b); err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return "", docstore.ErrDuplicate
		}
		return "", err
	}

	return id, nil
}

func (s *Store) GetDocument(ctx context.Context, collection, id string) (map[string]any, error) {
	var b []byte
	err := s.db.QueryRow(ctx, SelectDocumentByID, collection, id).Scan(&b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var fields map[string]any
	if err = json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("decode document fields: %w", err)
	}

	return fields, nil
}

func (s *Store) QueryDocuments(ctx context.Context, collection string, q docstore.Query) ([]docstore.Document, error) {
	sql := SelectDocuments
	args := []any{collection}

	if q.Where != nil {
		args = append(args, q.Where.Field, q.Where.Value)
		sql += fmt.Sprintf(" AND fields->>$%d = $%d", len(args)-1, len(args))
	}
	if q.OrderBy != "" {
		args = append(args, q.OrderBy)
		dir := "ASC"
		if q.Desc {
			dir = "DESC"
		}
		// Order-by fields hold timestamps, stored as RFC 3339 strings
		// with trailing fractional zeros trimmed. Sorted as text,
		// "...00.52Z" lands below "...00.5Z"; the cast compares them
		// chronologically.
		sql += fmt.Sprintf(" ORDER BY (fields->>$%d)::timestamptz %s", len(args), dir)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []docstore.Document
	for rows.Next() {
		var (
			id string
			b  []byte
		)
		if err = rows.Scan(&id, &b); err != nil {
			return nil, err
		}

		var fields map[string]any
		if err = json.Unmarshal(b, &fields); err != nil {
			return nil, fmt.Errorf("decode document fields: %w", err)
		}

		docs = append(docs, docstore.Document{ID: id, Fields: fields})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

func (s *Store) UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	b, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode document fields: %w", err)
	}

	tag, err := s.db.Exec(ctx, UpdateDocumentByID, collection, id, b)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}

	return nil
}
