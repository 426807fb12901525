package documents

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"careervault-backend/internal/extract"
	"careervault-backend/internal/shared/storage/object"
	"careervault-backend/internal/shared/telemetry"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Upload saves the file to object storage, extracts its text, and records
// the document. Extraction failures are non-fatal so an unsupported format
// can still be stored and re-processed later.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}
	if len(data) == 0 {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	text, extractErr := extract.TextFromBytes(ctx, data, mimeType, fileName)
	if extractErr != nil {
		telemetry.Warn("document text extraction failed", map[string]any{
			"fileName": fileName,
			"mimeType": mimeType,
			"error":    extractErr.Error(),
		})
	} else {
		doc.ExtractedText = text
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Current returns the current document for a user.
func (s *Service) Current(ctx context.Context, userID string) (Document, error) {
	if userID == "" {
		return Document{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// List returns documents for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// ExtractedText resolves a document to its extracted text. If extraction was
// skipped at upload time it is retried from the stored object.
func (s *Service) ExtractedText(ctx context.Context, userID, documentID string) (string, error) {
	doc, err := s.Repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return "", err
	}
	if doc.ExtractedText != "" {
		return doc.ExtractedText, nil
	}
	if doc.StorageKey == "" {
		return "", ErrNoText
	}

	body, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return "", ErrNoText
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	text, err := extract.TextFromBytes(ctx, data, doc.MimeType, doc.FileName)
	if err != nil {
		return "", ErrNoText
	}

	if err := s.Repo.SetExtractedText(ctx, userID, documentID, text); err != nil {
		telemetry.Warn("failed to persist extracted text", map[string]any{
			"documentId": documentID,
			"error":      err.Error(),
		})
	}
	return text, nil
}
