package submissions

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"profile-forge-backend/internal/shared/storage/object/local"
)

type failingRepo struct{ err error }

func (r failingRepo) Create(context.Context, Submission) error { return r.err }
func (r failingRepo) GetByID(context.Context, string) (Submission, error) {
	return Submission{}, r.err
}
func (r failingRepo) ListByUser(context.Context, string, int, int) ([]Submission, error) {
	return nil, r.err
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, io.Reader) (string, int64, error) {
	return "", 0, errors.New("disk full")
}
func (failingStore) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("disk full")
}

func newLocalStore(t *testing.T) (*local.Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := local.New(dir)
	if err != nil {
		t.Fatalf("local.New: %v", err)
	}
	return store, dir
}

func TestSubmitStoresFileAndRecord(t *testing.T) {
	store, dir := newLocalStore(t)
	repo := NewMemoryRepo()
	svc := NewService(store, repo)
	svc.Now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 123456789, time.FixedZone("x", 3600)) }

	sub, err := svc.Submit(context.Background(), SubmitInput{
		UserID:   "u1",
		UserName: "Alice",
		FileName: "solution.py",
		Body:     strings.NewReader("print(1)"),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := uuid.Parse(sub.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", sub.ID)
	}
	if sub.Status != StatusPending {
		t.Fatalf("unexpected status %q", sub.Status)
	}
	if sub.SubmittedAt != "2026-03-04T04:06:07.123456Z" {
		t.Fatalf("unexpected submittedAt %q", sub.SubmittedAt)
	}
	wantPath := filepath.ToSlash(filepath.Join(dir, sub.ID+".py"))
	if sub.FilePath != wantPath {
		t.Fatalf("expected path %q, got %q", wantPath, sub.FilePath)
	}
	data, err := os.ReadFile(filepath.Join(dir, sub.ID+".py"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "print(1)" {
		t.Fatalf("unexpected file contents %q", data)
	}

	stored, err := repo.GetByID(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.UserName != "Alice" || stored.FileName != "solution.py" {
		t.Fatalf("unexpected record: %+v", stored)
	}
	if stored.Bleu4Score != nil || stored.CustomBleuScore != nil || stored.EntityCoverageScore != nil ||
		stored.EvaluationSummary != nil || stored.Logs != nil {
		t.Fatalf("expected null evaluation fields: %+v", stored)
	}
}

func TestSubmitWithoutExtension(t *testing.T) {
	store, dir := newLocalStore(t)
	svc := NewService(store, NewMemoryRepo())

	sub, err := svc.Submit(context.Background(), SubmitInput{
		UserID: "u1", UserName: "Alice", FileName: "Makefile", Body: strings.NewReader(""),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, sub.ID))
	if err != nil {
		t.Fatalf("stat stored file: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
}

func TestSubmitDegradedModeSkipsRecord(t *testing.T) {
	store, dir := newLocalStore(t)
	svc := NewService(store, nil)

	sub, err := svc.Submit(context.Background(), SubmitInput{
		UserID: "u1", UserName: "Alice", FileName: "a.txt", Body: strings.NewReader("hello"),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, sub.ID+".txt")); err != nil {
		t.Fatalf("expected stored file: %v", err)
	}
	if svc.PersistenceEnabled() {
		t.Fatalf("expected persistence disabled")
	}
	if _, err := svc.Get(context.Background(), sub.ID); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := svc.List(context.Background(), "u1", 0, 0); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSubmitRepoFailureKeepsFile(t *testing.T) {
	store, dir := newLocalStore(t)
	svc := NewService(store, failingRepo{err: errors.New("connection reset")})
	svc.NewID = func() string { return "fixed-id" }

	_, err := svc.Submit(context.Background(), SubmitInput{
		UserID: "u1", UserName: "Alice", FileName: "a.py", Body: strings.NewReader("x"),
	})
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected repo error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "fixed-id.py")); err != nil {
		t.Fatalf("expected file to remain after record failure: %v", err)
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(failingStore{}, repo)
	svc.NewID = func() string { return "fixed-id" }

	_, err := svc.Submit(context.Background(), SubmitInput{
		UserID: "u1", UserName: "Alice", FileName: "a.py", Body: strings.NewReader("x"),
	})
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("expected store error, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "fixed-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no record after store failure, got %v", err)
	}
}

func TestSubmitConcurrentIDsAreDistinct(t *testing.T) {
	store, _ := newLocalStore(t)
	svc := NewService(store, NewMemoryRepo())

	const n = 20
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub, err := svc.Submit(context.Background(), SubmitInput{
				UserID: "u1", UserName: "Alice", FileName: "same.py", Body: strings.NewReader("x"),
			})
			if err != nil {
				t.Errorf("Submit: %v", err)
				return
			}
			ids <- sub.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d submissions, got %d", n, len(seen))
	}
}

func TestGetRejectsMalformedID(t *testing.T) {
	store, _ := newLocalStore(t)
	svc := NewService(store, NewMemoryRepo())
	if _, err := svc.Get(context.Background(), "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListRequiresUser(t *testing.T) {
	store, _ := newLocalStore(t)
	svc := NewService(store, NewMemoryRepo())
	if _, err := svc.List(context.Background(), "  ", 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
