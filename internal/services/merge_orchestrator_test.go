package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/MatePRAgent/internal/domain/models"
	"github.com/Tomas-vilte/MatePRAgent/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMerger(t *testing.T, vcs *MockVCSClient) *MergeOrchestrator {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewMergeOrchestrator(vcs, trans)
}

func autoMergePR(number int, title string) models.PullRequest {
	return models.PullRequest{
		Number:  number,
		Title:   title,
		HeadSHA: "deadbeef",
		Labels:  map[string]bool{models.AutoMergeLabel: true},
	}
}

func TestMergeOrchestrator_MaybeMerge(t *testing.T) {
	t.Run("should merge a passing PR labeled auto-merge", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		merger := newTestMerger(t, mockVCS)

		mockVCS.On("MergePR", mock.Anything, 12, "Auto-merge PR #12: Fix typo").
			Return(models.MergeResult{Merged: true}, nil).Once()

		outcome := merger.MaybeMerge(context.Background(), autoMergePR(12, "Fix typo"), models.CIStatePassing)

		assert.Equal(t, models.MergeStatusMerged, outcome.Status)
		mockVCS.AssertExpectations(t)
	})

	t.Run("should skip when the PR is not passing", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		merger := newTestMerger(t, mockVCS)

		for _, state := range []models.CIState{models.CIStateFailing, models.CIStatePending} {
			outcome := merger.MaybeMerge(context.Background(), autoMergePR(12, "Fix typo"), state)
			assert.Equal(t, models.MergeStatusSkipped, outcome.Status)
		}
		mockVCS.AssertNotCalled(t, "MergePR")
	})

	t.Run("should skip a passing PR without the auto-merge label", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		merger := newTestMerger(t, mockVCS)

		pr := models.PullRequest{
			Number: 12,
			Labels: map[string]bool{models.LabelCIPassing: true},
		}

		outcome := merger.MaybeMerge(context.Background(), pr, models.CIStatePassing)

		assert.Equal(t, models.MergeStatusSkipped, outcome.Status)
		mockVCS.AssertNotCalled(t, "MergePR")
	})

	t.Run("should report failure with the platform message", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		merger := newTestMerger(t, mockVCS)

		mockVCS.On("MergePR", mock.Anything, 12, mock.Anything).
			Return(models.MergeResult{Merged: false, Message: "Pull Request is not mergeable"}, nil).Once()

		outcome := merger.MaybeMerge(context.Background(), autoMergePR(12, "Fix typo"), models.CIStatePassing)

		assert.Equal(t, models.MergeStatusFailed, outcome.Status)
		assert.Equal(t, "Pull Request is not mergeable", outcome.Reason)
	})

	t.Run("should fall back to a generic reason when the platform says nothing", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		merger := newTestMerger(t, mockVCS)

		mockVCS.On("MergePR", mock.Anything, 12, mock.Anything).
			Return(models.MergeResult{}, nil).Once()

		outcome := merger.MaybeMerge(context.Background(), autoMergePR(12, "Fix typo"), models.CIStatePassing)

		assert.Equal(t, models.MergeStatusFailed, outcome.Status)
		assert.NotEmpty(t, outcome.Reason)
	})

	t.Run("should report failure when the merge request errors", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		merger := newTestMerger(t, mockVCS)

		mockVCS.On("MergePR", mock.Anything, 12, mock.Anything).
			Return(models.MergeResult{}, errors.New("HTTP 405: not mergeable")).Once()

		outcome := merger.MaybeMerge(context.Background(), autoMergePR(12, "Fix typo"), models.CIStatePassing)

		assert.Equal(t, models.MergeStatusFailed, outcome.Status)
		assert.Contains(t, outcome.Reason, "HTTP 405")
	})

	t.Run("should not retry within the run", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		merger := newTestMerger(t, mockVCS)

		mockVCS.On("MergePR", mock.Anything, 12, mock.Anything).
			Return(models.MergeResult{}, errors.New("HTTP 500")).Once()

		merger.MaybeMerge(context.Background(), autoMergePR(12, "Fix typo"), models.CIStatePassing)

		mockVCS.AssertNumberOfCalls(t, "MergePR", 1)
	})
}
