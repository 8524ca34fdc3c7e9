package mocks

import (
	"context"
	"sync"

	"github.com/community-content-api/internal/models"
	"github.com/community-content-api/internal/repository"
)

// MockDiscussionRepository is a mock implementation of DiscussionRepository.
// The mutex keeps the edit-counter increments safe when tests exercise
// concurrent editors.
type MockDiscussionRepository struct {
	mu           sync.Mutex
	Discussions  map[string]*models.Discussion
	UpdateCalls  int
	DeleteCalls  int
	UpdateError  error
	DeleteError  error
	GetError     error
}

// Verify interface compliance
var _ repository.DiscussionRepository = (*MockDiscussionRepository)(nil)

func NewMockDiscussionRepository() *MockDiscussionRepository {
	return &MockDiscussionRepository{
		Discussions: make(map[string]*models.Discussion),
	}
}

func (m *MockDiscussionRepository) Create(ctx context.Context, discussion *models.Discussion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Discussions[discussion.ID] = discussion
	return nil
}

func (m *MockDiscussionRepository) GetByID(ctx context.Context, id string) (*models.Discussion, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Discussions[id], nil
}

func (m *MockDiscussionRepository) UpdateTitle(ctx context.Context, id, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if d, ok := m.Discussions[id]; ok {
		d.Title = title
		d.TitleEditCount++
	}
	return nil
}

func (m *MockDiscussionRepository) UpdateContent(ctx context.Context, id, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if d, ok := m.Discussions[id]; ok {
		d.Content = content
		d.ContentEditCount++
	}
	return nil
}

func (m *MockDiscussionRepository) SoftDelete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.Discussions[id]; ok {
		d.IsDeleted = true
	}
	return nil
}

func (m *MockDiscussionRepository) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if m.DeleteError != nil {
		return false, m.DeleteError
	}
	if _, ok := m.Discussions[id]; !ok {
		return false, nil
	}
	delete(m.Discussions, id)
	return true, nil
}

func (m *MockDiscussionRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Discussions), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mu          sync.Mutex
	Comments    map[string]*models.Comment
	DeleteCalls int
	ListError   error
	DeleteFunc  func(ctx context.Context, id string) error
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) ListByDiscussion(ctx context.Context, discussionID string) ([]*models.Comment, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var comments []*models.Comment
	for _, c := range m.Comments {
		if c.DiscussionID == discussionID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	delete(m.Comments, id)
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Comments), nil
}

// CountByDiscussion returns how many stored comments reference the
// discussion. Test helper, not part of the repository interface.
func (m *MockCommentRepository) CountByDiscussion(discussionID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, c := range m.Comments {
		if c.DiscussionID == discussionID {
			count++
		}
	}
	return count
}

// MockPastPaperRepository is a mock implementation of PastPaperRepository
type MockPastPaperRepository struct {
	Papers              map[string]*models.PastPaper
	CreateCalls         int
	CreateError         error
	ClassificationCalls int
	WithPhotoCalls      int
	UpdateError         error
}

// Verify interface compliance
var _ repository.PastPaperRepository = (*MockPastPaperRepository)(nil)

func NewMockPastPaperRepository() *MockPastPaperRepository {
	return &MockPastPaperRepository{
		Papers: make(map[string]*models.PastPaper),
	}
}

func (m *MockPastPaperRepository) Create(ctx context.Context, paper *models.PastPaper) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Papers[paper.ID] = paper
	return nil
}

func (m *MockPastPaperRepository) GetByID(ctx context.Context, id string) (*models.PastPaper, error) {
	return m.Papers[id], nil
}

func (m *MockPastPaperRepository) UpdateClassification(ctx context.Context, id string, input *models.SubmissionInput) error {
	m.ClassificationCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if p, ok := m.Papers[id]; ok {
		p.SubjectName = input.SubjectName
		p.ExamType = input.ExamType
		p.Visibility = input.Visibility
	}
	return nil
}

func (m *MockPastPaperRepository) UpdateWithPhoto(ctx context.Context, id string, input *models.SubmissionInput, photoURL string, confidence float64) error {
	m.WithPhotoCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if p, ok := m.Papers[id]; ok {
		p.SubjectName = input.SubjectName
		p.ExamType = input.ExamType
		p.Visibility = input.Visibility
		p.PhotoURL = photoURL
		p.Confidence = confidence
	}
	return nil
}

func (m *MockPastPaperRepository) Count(ctx context.Context) (int, error) {
	return len(m.Papers), nil
}

// MockSubjectRepository is a mock implementation of SubjectRepository
type MockSubjectRepository struct {
	Names []string
}

// Verify interface compliance
var _ repository.SubjectRepository = (*MockSubjectRepository)(nil)

func NewMockSubjectRepository(names ...string) *MockSubjectRepository {
	return &MockSubjectRepository{Names: names}
}

func (m *MockSubjectRepository) GetAllNames(ctx context.Context) ([]string, error) {
	return m.Names, nil
}
