package services

import (
	"context"

	"github.com/Tomas-vilte/MatePRAgent/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) ListOpenPRs(ctx context.Context) ([]models.PullRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PullRequest), args.Error(1)
}

func (m *MockVCSClient) ListCheckRuns(ctx context.Context, sha string) ([]models.CheckRun, error) {
	args := m.Called(ctx, sha)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CheckRun), args.Error(1)
}

func (m *MockVCSClient) EnsureLabel(ctx context.Context, name, color, description string) error {
	args := m.Called(ctx, name, color, description)
	return args.Error(0)
}

func (m *MockVCSClient) AddLabels(ctx context.Context, prNumber int, labels []string) error {
	args := m.Called(ctx, prNumber, labels)
	return args.Error(0)
}

func (m *MockVCSClient) RemoveLabel(ctx context.Context, prNumber int, label string) error {
	args := m.Called(ctx, prNumber, label)
	return args.Error(0)
}

func (m *MockVCSClient) ListComments(ctx context.Context, prNumber int) ([]models.Comment, error) {
	args := m.Called(ctx, prNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockVCSClient) CreateComment(ctx context.Context, prNumber int, body string) error {
	args := m.Called(ctx, prNumber, body)
	return args.Error(0)
}

func (m *MockVCSClient) UpdateComment(ctx context.Context, commentID int64, body string) error {
	args := m.Called(ctx, commentID, body)
	return args.Error(0)
}

func (m *MockVCSClient) MergePR(ctx context.Context, prNumber int, commitTitle string) (models.MergeResult, error) {
	args := m.Called(ctx, prNumber, commitTitle)
	return args.Get(0).(models.MergeResult), args.Error(1)
}
