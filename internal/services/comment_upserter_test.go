package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/MatePRAgent/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommentUpserter_Upsert(t *testing.T) {
	t.Run("should create a marked comment when none exists", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		upserter := NewCommentUpserter(mockVCS)

		mockVCS.On("ListComments", mock.Anything, 42).Return([]models.Comment{
			{ID: 1, Body: "LGTM"},
		}, nil).Once()
		mockVCS.On("CreateComment", mock.Anything, 42, BotCommentMarker+"\nall green").Return(nil).Once()

		err := upserter.Upsert(context.Background(), 42, "all green")

		assert.NoError(t, err)
		mockVCS.AssertExpectations(t)
		mockVCS.AssertNotCalled(t, "UpdateComment")
	})

	t.Run("should update the existing marked comment in place", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		upserter := NewCommentUpserter(mockVCS)

		mockVCS.On("ListComments", mock.Anything, 42).Return([]models.Comment{
			{ID: 1, Body: "LGTM"},
			{ID: 2, Body: BotCommentMarker + "\nold status"},
			{ID: 3, Body: "ping"},
		}, nil).Once()
		mockVCS.On("UpdateComment", mock.Anything, int64(2), BotCommentMarker+"\nnew status").Return(nil).Once()

		err := upserter.Upsert(context.Background(), 42, "new status")

		assert.NoError(t, err)
		mockVCS.AssertExpectations(t)
		mockVCS.AssertNotCalled(t, "CreateComment")
	})

	t.Run("should keep the same comment identity across upserts", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		upserter := NewCommentUpserter(mockVCS)

		mockVCS.On("ListComments", mock.Anything, 42).Return([]models.Comment{
			{ID: 9, Body: BotCommentMarker + "\nsame body"},
		}, nil).Twice()
		mockVCS.On("UpdateComment", mock.Anything, int64(9), BotCommentMarker+"\nsame body").Return(nil).Twice()

		require.NoError(t, upserter.Upsert(context.Background(), 42, "same body"))
		require.NoError(t, upserter.Upsert(context.Background(), 42, "same body"))

		mockVCS.AssertExpectations(t)
		mockVCS.AssertNotCalled(t, "CreateComment")
	})

	t.Run("should converge to the latest body", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		upserter := NewCommentUpserter(mockVCS)

		mockVCS.On("ListComments", mock.Anything, 42).Return([]models.Comment{}, nil).Once()
		mockVCS.On("CreateComment", mock.Anything, 42, BotCommentMarker+"\nB1").Return(nil).Once()
		require.NoError(t, upserter.Upsert(context.Background(), 42, "B1"))

		mockVCS.On("ListComments", mock.Anything, 42).Return([]models.Comment{
			{ID: 5, Body: BotCommentMarker + "\nB1"},
		}, nil).Once()
		mockVCS.On("UpdateComment", mock.Anything, int64(5), BotCommentMarker+"\nB2").Return(nil).Once()
		require.NoError(t, upserter.Upsert(context.Background(), 42, "B2"))

		mockVCS.AssertExpectations(t)
	})

	t.Run("should find the marker beyond the first page of comments", func(t *testing.T) {
		// ListComments del cliente pagina hasta agotar, así que acá llega la
		// lista completa: el comentario marcado está lejos del principio.
		mockVCS := &MockVCSClient{}
		upserter := NewCommentUpserter(mockVCS)

		comments := make([]models.Comment, 0, 150)
		for i := 0; i < 149; i++ {
			comments = append(comments, models.Comment{ID: int64(i + 1), Body: "human chatter"})
		}
		comments = append(comments, models.Comment{ID: 150, Body: BotCommentMarker + "\nold"})

		mockVCS.On("ListComments", mock.Anything, 42).Return(comments, nil).Once()
		mockVCS.On("UpdateComment", mock.Anything, int64(150), BotCommentMarker+"\nfresh").Return(nil).Once()

		err := upserter.Upsert(context.Background(), 42, "fresh")

		assert.NoError(t, err)
		mockVCS.AssertExpectations(t)
		mockVCS.AssertNotCalled(t, "CreateComment")
	})

	t.Run("should propagate a listing failure without creating anything", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		upserter := NewCommentUpserter(mockVCS)

		mockVCS.On("ListComments", mock.Anything, 42).Return(nil, errors.New("HTTP 502")).Once()

		err := upserter.Upsert(context.Background(), 42, "body")

		assert.Error(t, err)
		mockVCS.AssertNotCalled(t, "CreateComment")
		mockVCS.AssertNotCalled(t, "UpdateComment")
	})
}

func TestCommentUpserter_RenderStatusBody(t *testing.T) {
	upserter := NewCommentUpserter(&MockVCSClient{})

	t.Run("should render the status table with the short SHA", func(t *testing.T) {
		pr := models.PullRequest{
			Number:  17,
			Title:   "Add feature",
			HeadSHA: "0123456789abcdef",
		}

		body := upserter.RenderStatusBody(pr, models.CIStatePassing, models.LabelCIPassing)

		assert.Contains(t, body, "**Automated PR Status** ✅")
		assert.Contains(t, body, "| PR | #17 |")
		assert.Contains(t, body, "`0123456`")
		assert.Contains(t, body, "| CI Status | **passing** |")
		assert.Contains(t, body, "| Label applied | `ci-passing` |")
	})

	t.Run("should use the pending icon for needs-review", func(t *testing.T) {
		pr := models.PullRequest{Number: 3, HeadSHA: "abc"}

		body := upserter.RenderStatusBody(pr, models.CIStatePending, models.LabelNeedsReview)

		assert.Contains(t, body, "⏳")
		assert.Contains(t, body, "`abc`")
		assert.Contains(t, body, "`needs-review`")
	})
}
