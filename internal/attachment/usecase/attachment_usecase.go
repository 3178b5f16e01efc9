package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	activityuc "taskboard-backend/internal/activity/usecase"
	"taskboard-backend/internal/attachment/repository"
	"taskboard-backend/internal/domain"
	taskrepo "taskboard-backend/internal/task/repository"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/database"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"
)

// sniffBytes is how much of the upload is read to detect its type.
const sniffBytes = 3072

var (
	errTaskNotFound       = apperror.NotFound("Task not found")
	errAttachmentNotFound = apperror.NotFound("Attachment not found")
)

type attachmentUsecase struct {
	attachmentRepo repository.AttachmentRepository
	taskRepo       taskrepo.TaskRepository
	store          FileStore
	recorder       activityuc.Recorder
	tx             database.Transactor
	maxBytes       int64
}

func NewAttachmentUsecase(
	attachmentRepo repository.AttachmentRepository,
	taskRepo taskrepo.TaskRepository,
	store FileStore,
	recorder activityuc.Recorder,
	tx database.Transactor,
	maxBytes int64,
) AttachmentUsecase {
	return &attachmentUsecase{
		attachmentRepo: attachmentRepo,
		taskRepo:       taskRepo,
		store:          store,
		recorder:       recorder,
		tx:             tx,
		maxBytes:       maxBytes,
	}
}

func (uc *attachmentUsecase) ownedTask(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	task, err := uc.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, apperror.Internal("load task", err)
	}
	if task == nil {
		return nil, errTaskNotFound
	}
	return task, nil
}

func (uc *attachmentUsecase) Upload(ctx context.Context, userID, taskID string, file Upload) (*domain.Attachment, error) {
	task, err := uc.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if file.Size > uc.maxBytes {
		return nil, apperror.Validation(fmt.Sprintf("File exceeds the maximum size of %d bytes", uc.maxBytes))
	}

	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(file.Content, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, apperror.Internal("read upload", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, apperror.Validation("File is empty")
	}
	mime := mimetype.Detect(head)

	ext := strings.ToLower(filepath.Ext(file.Name))
	if ext == "" {
		ext = mime.Extension()
	}

	// One byte past the limit is enough to reject a lying Content-Length.
	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), file.Content), uc.maxBytes+1)
	name, path, size, err := uc.store.Save(body, ext)
	if err != nil {
		return nil, apperror.Internal("store upload", err)
	}
	if size > uc.maxBytes {
		uc.discard(path)
		return nil, apperror.Validation(fmt.Sprintf("File exceeds the maximum size of %d bytes", uc.maxBytes))
	}

	attachment := &domain.Attachment{
		Filename:     name,
		OriginalName: filepath.Base(file.Name),
		MimeType:     mime.String(),
		Size:         size,
		Path:         path,
		TaskID:       task.ID,
	}
	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := uc.attachmentRepo.WithTx(tx).Create(ctx, attachment); err != nil {
			return err
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.ActionAttachmentAdded,
			UserID:    userID,
			TaskID:    &task.ID,
			ProjectID: task.ProjectID,
			Details:   attachment.OriginalName,
		})
	})
	if err != nil {
		uc.discard(path)
		return nil, apperror.Internal("save attachment", err)
	}
	return attachment, nil
}

func (uc *attachmentUsecase) discard(path string) {
	if err := uc.store.Remove(path); err != nil {
		log.Printf("[AttachmentUsecase] Failed to remove %s: %v", path, err)
	}
}

func (uc *attachmentUsecase) List(ctx context.Context, userID, taskID string) ([]domain.Attachment, error) {
	task, err := uc.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	attachments, err := uc.attachmentRepo.ListByTask(ctx, task.ID)
	if err != nil {
		return nil, apperror.Internal("list attachments", err)
	}
	return attachments, nil
}

func (uc *attachmentUsecase) Get(ctx context.Context, userID, id string) (*domain.Attachment, error) {
	attachment, err := uc.attachmentRepo.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal("load attachment", err)
	}
	if attachment == nil {
		return nil, errAttachmentNotFound
	}
	return attachment, nil
}

func (uc *attachmentUsecase) Delete(ctx context.Context, userID, id string) error {
	attachment, err := uc.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	affected, err := uc.attachmentRepo.Delete(ctx, attachment.ID)
	if err != nil {
		return apperror.Internal("delete attachment", err)
	}
	if affected == 0 {
		return errAttachmentNotFound
	}
	uc.discard(attachment.Path)
	return nil
}
