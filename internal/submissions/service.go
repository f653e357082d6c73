package submissions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"profile-forge-backend/internal/shared/metrics"
	"profile-forge-backend/internal/shared/storage/object"
	"profile-forge-backend/internal/shared/telemetry"
	"profile-forge-backend/internal/shared/util"
)

// SubmitInput carries one uploaded file and the submitter identity.
type SubmitInput struct {
	UserID   string
	UserName string
	FileName string
	Body     io.Reader
}

// Service stores uploads and records their metadata.
//
// Repo is nil when the document store failed to initialize at startup. Uploads are
// still accepted in that case, without a metadata record.
type Service struct {
	Store object.ObjectStore
	Repo  Repo

	NewID func() string
	Now   func() time.Time
}

// NewService constructs a Service. repo may be nil.
func NewService(store object.ObjectStore, repo Repo) *Service {
	return &Service{Store: store, Repo: repo}
}

// PersistenceEnabled reports whether submission records are being written.
func (s *Service) PersistenceEnabled() bool {
	return s != nil && s.Repo != nil
}

// Submit writes the upload to the object store under a fresh id, then records it.
// The two writes are independent; a file may exist without a record.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Submission, error) {
	if s == nil || s.Store == nil {
		return Submission{}, errors.New("submissions service not configured")
	}
	if in.Body == nil {
		return Submission{}, fmt.Errorf("%w: missing file body", ErrInvalidInput)
	}

	id := s.newID()
	key := id + util.FileExtension(in.FileName)

	path, size, err := s.Store.Save(ctx, key, in.Body)
	if err != nil {
		metrics.IncSubmissionFailed()
		return Submission{}, err
	}

	sub := Submission{
		ID:          id,
		UserID:      in.UserID,
		UserName:    in.UserName,
		FileName:    in.FileName,
		FilePath:    path,
		SubmittedAt: FormatTimestamp(s.now()),
		Status:      StatusPending,
	}

	if s.Repo == nil {
		metrics.IncPersistSkipped()
		telemetry.Warn("submission.persist.skipped", map[string]any{
			"submission_id": id,
			"reason":        "document store not initialized",
		})
	} else if err := s.Repo.Create(ctx, sub); err != nil {
		metrics.IncSubmissionFailed()
		return Submission{}, fmt.Errorf("record submission %s: %w", id, err)
	}

	metrics.IncSubmissionAccepted()
	metrics.ObserveUploadBytes(size)
	telemetry.Info("submission.accepted", map[string]any{
		"submission_id": id,
		"user_id":       in.UserID,
		"file_path":     path,
		"size_bytes":    size,
	})
	return sub, nil
}

// Get returns a submission by id. Malformed ids are reported as not found.
func (s *Service) Get(ctx context.Context, id string) (Submission, error) {
	if !s.PersistenceEnabled() {
		return Submission{}, ErrStoreUnavailable
	}
	if _, err := uuid.Parse(id); err != nil {
		return Submission{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns a user's submissions newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Submission, error) {
	if !s.PersistenceEnabled() {
		return nil, ErrStoreUnavailable
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
