package usecase

import (
	"context"
	"io"

	"taskboard-backend/internal/domain"
)

// Upload is one incoming file.
type Upload struct {
	Name    string
	Size    int64
	Content io.Reader
}

type AttachmentUsecase interface {
	Upload(ctx context.Context, userID, taskID string, file Upload) (*domain.Attachment, error)
	List(ctx context.Context, userID, taskID string) ([]domain.Attachment, error)
	// Get returns the row for a download; Path points at the stored file
	Get(ctx context.Context, userID, id string) (*domain.Attachment, error)
	Delete(ctx context.Context, userID, id string) error
}

// FileStore is the part of the storage backend the use case needs.
type FileStore interface {
	Save(r io.Reader, ext string) (name string, path string, size int64, err error)
	Remove(path string) error
}
