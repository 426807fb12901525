package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const docColumns = `id, user_id, file_name, mime_type, size_bytes, storage_key, extracted_text, created_at`

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    user_id,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    extracted_text,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var storageKey sql.NullString
	if doc.StorageKey != "" {
		storageKey = sql.NullString{String: doc.StorageKey, Valid: true}
	}
	var extracted sql.NullString
	if doc.ExtractedText != "" {
		extracted = sql.NullString{String: doc.ExtractedText, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.FileName,
		doc.MimeType,
		doc.SizeBytes,
		storageKey,
		extracted,
		doc.CreatedAt,
	)
	return err
}

// GetByID fetches a document by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, documentID string) (Document, error) {
	const query = `
SELECT ` + docColumns + `
FROM documents
WHERE user_id = $1 AND id = $2
LIMIT 1`
	return scanDoc(r.DB.QueryRowContext(ctx, query, userID, documentID))
}

// GetCurrentByUser returns the latest document for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userID string) (Document, error) {
	const query = `
SELECT ` + docColumns + `
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`
	return scanDoc(r.DB.QueryRowContext(ctx, query, userID))
}

// ListByUser lists documents ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + docColumns + `
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDoc(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// SetExtractedText stores the extracted text for a document.
func (r *PGRepo) SetExtractedText(ctx context.Context, userID, documentID, text string) error {
	const query = `
UPDATE documents
SET extracted_text = $1
WHERE user_id = $2 AND id = $3`
	res, err := r.DB.ExecContext(ctx, query, text, userID, documentID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type docScanner interface {
	Scan(dest ...any) error
}

func scanDoc(row docScanner) (Document, error) {
	var doc Document
	var storageKey sql.NullString
	var extracted sql.NullString
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.FileName,
		&doc.MimeType,
		&doc.SizeBytes,
		&storageKey,
		&extracted,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if storageKey.Valid {
		doc.StorageKey = storageKey.String
	}
	if extracted.Valid {
		doc.ExtractedText = extracted.String
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
