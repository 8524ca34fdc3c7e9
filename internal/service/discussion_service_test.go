package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/community-content-api/internal/config"
	"github.com/community-content-api/internal/mocks"
	"github.com/community-content-api/internal/models"
	"github.com/community-content-api/internal/ocr"
	"github.com/community-content-api/internal/repository"
	"github.com/community-content-api/internal/service"
	"github.com/community-content-api/internal/validation"
	"github.com/rs/zerolog"
)

func newTestServices(
	discussions *mocks.MockDiscussionRepository,
	comments *mocks.MockCommentRepository,
	papers *mocks.MockPastPaperRepository,
	blobs *mocks.MockBlobStore,
	recognizer *mocks.MockRecognizer,
) *service.Services {
	repos := &repository.Repositories{
		Discussion: discussions,
		Comment:    comments,
		PastPaper:  papers,
		Subject:    mocks.NewMockSubjectRepository("calculus", "operating systems"),
	}

	validator := validation.NewValidator()
	validator.SetSubjectCache([]string{"calculus", "operating systems"})

	cfg := &config.Config{
		Limits: config.LimitsConfig{TitleEdits: 5, ContentEdits: 5},
		OCR:    config.OCRConfig{MinLines: 10, Language: "eng"},
	}

	scorer := ocr.NewScorer(recognizer, cfg.OCR.Language)

	return service.NewServices(repos, blobs, scorer, validator, cfg, zerolog.Nop())
}

func newDiscussionFixture(discussions *mocks.MockDiscussionRepository, d *models.Discussion) *models.Discussion {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	discussions.Discussions[d.ID] = d
	return d
}

// waitFor polls until the condition holds or the deadline passes. Comment
// cleanup is detached from the caller, so tests observe it eventually.
func waitFor(t *testing.T, timeout time.Duration, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met before deadline")
}

func TestUpdateTitle_IncrementsCounter(t *testing.T) {
	discussions := mocks.NewMockDiscussionRepository()
	comments := mocks.NewMockCommentRepository()
	svc := newTestServices(discussions, comments, mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	// Title edited 3 times, content never; limit is 5
	newDiscussionFixture(discussions, &models.Discussion{
		ID:             "d1",
		Title:          "old title",
		TitleEditCount: 3,
	})

	if err := svc.Discussion.UpdateTitle(context.Background(), "d1", "new title"); err != nil {
		t.Fatalf("UpdateTitle failed: %v", err)
	}

	stored := discussions.Discussions["d1"]
	if stored.Title != "new title" {
		t.Errorf("Expected title 'new title', got %q", stored.Title)
	}
	if stored.TitleEditCount != 4 {
		t.Errorf("Expected counter 4, got %d", stored.TitleEditCount)
	}
	if stored.ContentEditCount != 0 {
		t.Errorf("Content counter should stay 0, got %d", stored.ContentEditCount)
	}
}

func TestUpdateTitle_DeletedDiscussion(t *testing.T) {
	discussions := mocks.NewMockDiscussionRepository()
	svc := newTestServices(discussions, mocks.NewMockCommentRepository(), mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	newDiscussionFixture(discussions, &models.Discussion{ID: "d1", IsDeleted: true})

	err := svc.Discussion.UpdateTitle(context.Background(), "d1", "new title")

	var policyErr *service.PolicyError
	if !errors.As(err, &policyErr) {
		t.Fatalf("Expected PolicyError, got %v", err)
	}
	if policyErr.Reason != service.ReasonAlreadyDeleted {
		t.Errorf("Expected reason %s, got %s", service.ReasonAlreadyDeleted, policyErr.Reason)
	}
	if discussions.UpdateCalls != 0 {
		t.Errorf("Store must not be called on denial, got %d update calls", discussions.UpdateCalls)
	}
}

func TestUpdateContent_LimitExceeded(t *testing.T) {
	discussions := mocks.NewMockDiscussionRepository()
	svc := newTestServices(discussions, mocks.NewMockCommentRepository(), mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	newDiscussionFixture(discussions, &models.Discussion{ID: "d1", ContentEditCount: 6})

	err := svc.Discussion.UpdateContent(context.Background(), "d1", "new content")

	var policyErr *service.PolicyError
	if !errors.As(err, &policyErr) {
		t.Fatalf("Expected PolicyError, got %v", err)
	}
	if policyErr.Reason != service.ReasonLocked {
		t.Errorf("Expected reason %s, got %s", service.ReasonLocked, policyErr.Reason)
	}
	if discussions.UpdateCalls != 0 {
		t.Error("Store must not be called on denial")
	}
}

func TestUpdateContent_UnknownDiscussion(t *testing.T) {
	discussions := mocks.NewMockDiscussionRepository()
	svc := newTestServices(discussions, mocks.NewMockCommentRepository(), mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	err := svc.Discussion.UpdateContent(context.Background(), "missing", "content")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTitle_ConcurrentEditorsKeepEveryIncrement(t *testing.T) {
	discussions := mocks.NewMockDiscussionRepository()
	svc := newTestServices(discussions, mocks.NewMockCommentRepository(), mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	newDiscussionFixture(discussions, &models.Discussion{ID: "d1", TitleEditCount: 2})

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := svc.Discussion.UpdateTitle(context.Background(), "d1", fmt.Sprintf("title %d", i)); err != nil {
				t.Errorf("UpdateTitle failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	// Relative increments: two concurrent edits from base 2 land on 4,
	// never 3
	if got := discussions.Discussions["d1"].TitleEditCount; got != 4 {
		t.Errorf("Expected counter 4 after two concurrent edits, got %d", got)
	}
}

func TestDeleteWithComments_RemovesChildren(t *testing.T) {
	discussions := mocks.NewMockDiscussionRepository()
	comments := mocks.NewMockCommentRepository()
	svc := newTestServices(discussions, comments, mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	newDiscussionFixture(discussions, &models.Discussion{ID: "d1"})
	for i := 0; i < 3; i++ {
		comments.Comments[fmt.Sprintf("c%d", i)] = &models.Comment{
			ID:           fmt.Sprintf("c%d", i),
			DiscussionID: "d1",
		}
	}
	// A comment on another discussion must survive
	comments.Comments["other"] = &models.Comment{ID: "other", DiscussionID: "d2"}

	if err := svc.Discussion.DeleteWithComments(context.Background(), "d1"); err != nil {
		t.Fatalf("DeleteWithComments failed: %v", err)
	}

	// Parent is gone synchronously
	if _, ok := discussions.Discussions["d1"]; ok {
		t.Error("Discussion should be deleted")
	}

	// Children disappear eventually
	waitFor(t, 2*time.Second, func() bool {
		return comments.CountByDiscussion("d1") == 0
	})

	if comments.CountByDiscussion("d2") != 1 {
		t.Error("Comments of other discussions must not be touched")
	}
}

func TestDeleteWithComments_ParentFailureSkipsChildren(t *testing.T) {
	discussions := mocks.NewMockDiscussionRepository()
	comments := mocks.NewMockCommentRepository()
	svc := newTestServices(discussions, comments, mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	newDiscussionFixture(discussions, &models.Discussion{ID: "d1"})
	comments.Comments["c1"] = &models.Comment{ID: "c1", DiscussionID: "d1"}
	discussions.DeleteError = errors.New("store unavailable")

	err := svc.Discussion.DeleteWithComments(context.Background(), "d1")
	if err == nil {
		t.Fatal("Expected error when parent delete fails")
	}

	// Give any stray goroutine a moment, then confirm nothing was touched
	time.Sleep(50 * time.Millisecond)
	if comments.DeleteCalls != 0 {
		t.Errorf("No child delete may be issued when the parent delete fails, got %d", comments.DeleteCalls)
	}
	if comments.CountByDiscussion("d1") != 1 {
		t.Error("Comment should still exist")
	}
}

func TestDeleteWithComments_ChildFailureDoesNotPropagate(t *testing.T) {
	discussions := mocks.NewMockDiscussionRepository()
	comments := mocks.NewMockCommentRepository()
	svc := newTestServices(discussions, comments, mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	newDiscussionFixture(discussions, &models.Discussion{ID: "d1"})
	comments.Comments["c1"] = &models.Comment{ID: "c1", DiscussionID: "d1"}

	var deleteAttempts sync.WaitGroup
	deleteAttempts.Add(1)
	var once sync.Once
	comments.DeleteFunc = func(ctx context.Context, id string) error {
		once.Do(deleteAttempts.Done)
		return errors.New("transient failure")
	}

	// Child failures are logged and dropped; the caller still succeeds
	if err := svc.Discussion.DeleteWithComments(context.Background(), "d1"); err != nil {
		t.Fatalf("DeleteWithComments failed: %v", err)
	}

	deleteAttempts.Wait()
}

func TestSoftDelete_BlocksLaterEdits(t *testing.T) {
	discussions := mocks.NewMockDiscussionRepository()
	svc := newTestServices(discussions, mocks.NewMockCommentRepository(), mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	newDiscussionFixture(discussions, &models.Discussion{ID: "d1", Title: "t"})

	if err := svc.Discussion.SoftDelete(context.Background(), "d1"); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	err := svc.Discussion.UpdateTitle(context.Background(), "d1", "new")
	var policyErr *service.PolicyError
	if !errors.As(err, &policyErr) || policyErr.Reason != service.ReasonAlreadyDeleted {
		t.Fatalf("Expected ALREADY_DELETED denial after soft delete, got %v", err)
	}
}

func TestAddComment_UnknownDiscussion(t *testing.T) {
	svc := newTestServices(mocks.NewMockDiscussionRepository(), mocks.NewMockCommentRepository(), mocks.NewMockPastPaperRepository(), mocks.NewMockBlobStore(), mocks.NewMockRecognizer())

	_, err := svc.Discussion.AddComment(context.Background(), "missing", "u1", "hello")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
