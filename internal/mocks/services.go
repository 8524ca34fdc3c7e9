package mocks

import (
	"context"

	"github.com/community-content-api/internal/models"
	"github.com/community-content-api/internal/service"
)

// MockDiscussionService is a mock implementation of DiscussionService
type MockDiscussionService struct {
	Discussions       map[string]*models.Discussion
	UpdateTitleFunc   func(ctx context.Context, id, title string) error
	UpdateContentFunc func(ctx context.Context, id, content string) error
	DeleteFunc        func(ctx context.Context, id string) error
	DeletedIDs        []string
}

// Verify interface compliance
var _ service.DiscussionService = (*MockDiscussionService)(nil)

func NewMockDiscussionService() *MockDiscussionService {
	return &MockDiscussionService{
		Discussions: make(map[string]*models.Discussion),
	}
}

func (m *MockDiscussionService) Create(ctx context.Context, title, content, authorID string) (*models.Discussion, error) {
	discussion := &models.Discussion{
		ID:       "test-discussion-id",
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	m.Discussions[discussion.ID] = discussion
	return discussion, nil
}

func (m *MockDiscussionService) Get(ctx context.Context, id string) (*models.Discussion, error) {
	if d, ok := m.Discussions[id]; ok {
		return d, nil
	}
	return nil, service.ErrNotFound
}

func (m *MockDiscussionService) UpdateTitle(ctx context.Context, id, title string) error {
	if m.UpdateTitleFunc != nil {
		return m.UpdateTitleFunc(ctx, id, title)
	}
	if _, ok := m.Discussions[id]; !ok {
		return service.ErrNotFound
	}
	m.Discussions[id].Title = title
	return nil
}

func (m *MockDiscussionService) UpdateContent(ctx context.Context, id, content string) error {
	if m.UpdateContentFunc != nil {
		return m.UpdateContentFunc(ctx, id, content)
	}
	if _, ok := m.Discussions[id]; !ok {
		return service.ErrNotFound
	}
	m.Discussions[id].Content = content
	return nil
}

func (m *MockDiscussionService) SoftDelete(ctx context.Context, id string) error {
	if d, ok := m.Discussions[id]; ok {
		d.IsDeleted = true
		return nil
	}
	return service.ErrNotFound
}

func (m *MockDiscussionService) DeleteWithComments(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	if _, ok := m.Discussions[id]; !ok {
		return service.ErrNotFound
	}
	delete(m.Discussions, id)
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

func (m *MockDiscussionService) AddComment(ctx context.Context, discussionID, userID, body string) (*models.Comment, error) {
	if _, ok := m.Discussions[discussionID]; !ok {
		return nil, service.ErrNotFound
	}
	return &models.Comment{
		ID:           "test-comment-id",
		DiscussionID: discussionID,
		UserID:       userID,
		Body:         body,
	}, nil
}

// MockPastPaperService is a mock implementation of PastPaperService
type MockPastPaperService struct {
	Papers     map[string]*models.PastPaper
	SubmitFunc func(ctx context.Context, input *models.SubmissionInput, image []byte, contentType string, uploader *models.Uploader) (*models.PastPaper, error)
	UpdateFunc func(ctx context.Context, id string, input *models.SubmissionInput, image []byte, contentType string) error
}

// Verify interface compliance
var _ service.PastPaperService = (*MockPastPaperService)(nil)

func NewMockPastPaperService() *MockPastPaperService {
	return &MockPastPaperService{
		Papers: make(map[string]*models.PastPaper),
	}
}

func (m *MockPastPaperService) Get(ctx context.Context, id string) (*models.PastPaper, error) {
	if p, ok := m.Papers[id]; ok {
		return p, nil
	}
	return nil, service.ErrNotFound
}

func (m *MockPastPaperService) Submit(ctx context.Context, input *models.SubmissionInput, image []byte, contentType string, uploader *models.Uploader) (*models.PastPaper, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, input, image, contentType, uploader)
	}
	paper := &models.PastPaper{
		ID:          "test-paper-id",
		SubjectName: input.SubjectName,
		ExamType:    input.ExamType,
		Visibility:  input.Visibility,
		UploaderUID: uploader.UID,
	}
	m.Papers[paper.ID] = paper
	return paper, nil
}

func (m *MockPastPaperService) Update(ctx context.Context, id string, input *models.SubmissionInput, image []byte, contentType string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input, image, contentType)
	}
	if _, ok := m.Papers[id]; !ok {
		return service.ErrNotFound
	}
	return nil
}
