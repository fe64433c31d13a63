package thread_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adiwarman/forum-api/domain"
	"github.com/adiwarman/forum-api/domain/mocks"
	ucase "github.com/adiwarman/forum-api/internal/usecase/thread"
)

func TestAddThread(t *testing.T) {
	var mockThread domain.Thread
	err := faker.FakeData(&mockThread)
	require.NoError(t, err)
	mockThread.ID = "thread-123"
	mockThread.Owner = "user-123"

	t.Run("success", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("AddThread", mock.Anything, domain.AddThread{Title: mockThread.Title, Body: mockThread.Body}, "user-123").
			Return(mockThread, nil).Once()

		u := ucase.NewService(mockThreadRepo)
		res, err := u.AddThread(context.TODO(), domain.AddThreadPayload{
			Title: mockThread.Title,
			Body:  mockThread.Body,
		}, "user-123")

		assert.NoError(t, err)
		assert.Equal(t, mockThread, res)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("unauthenticated performs no repository call", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)

		u := ucase.NewService(mockThreadRepo)
		_, err := u.AddThread(context.TODO(), domain.AddThreadPayload{
			Title: "sebuah thread",
			Body:  "sebuah body",
		}, "")

		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		mockThreadRepo.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid payload performs no repository call", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)

		u := ucase.NewService(mockThreadRepo)
		_, err := u.AddThread(context.TODO(), domain.AddThreadPayload{Title: "sebuah thread"}, "user-123")

		assert.ErrorIs(t, err, domain.ErrAddThreadMissingProperty)
		mockThreadRepo.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAddComment(t *testing.T) {
	mockComment := domain.Comment{
		ID:       "comment-123",
		Content:  "sebuah komentar",
		ThreadID: "thread-123",
		Owner:    "user-123",
		Date:     time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-123").Return(nil).Once()
		mockThreadRepo.On("AddCommentToThread", mock.Anything, "thread-123", domain.AddComment{Content: "sebuah komentar"}, "user-123").
			Return(mockComment, nil).Once()

		u := ucase.NewService(mockThreadRepo)
		res, err := u.AddComment(context.TODO(), "thread-123", domain.AddCommentPayload{Content: "sebuah komentar"}, "user-123")

		assert.NoError(t, err)
		assert.Equal(t, domain.AddedComment{
			ID:      "comment-123",
			Content: "sebuah komentar",
			Owner:   "user-123",
		}, res)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("unauthenticated performs no repository call", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)

		u := ucase.NewService(mockThreadRepo)
		_, err := u.AddComment(context.TODO(), "thread-123", domain.AddCommentPayload{Content: "sebuah komentar"}, "")

		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		mockThreadRepo.AssertNotCalled(t, "VerifyThreadExistence", mock.Anything, mock.Anything)
		mockThreadRepo.AssertNotCalled(t, "AddCommentToThread", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing thread short-circuits before validation", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-404").Return(domain.ErrNotFound).Once()

		u := ucase.NewService(mockThreadRepo)
		_, err := u.AddComment(context.TODO(), "thread-404", domain.AddCommentPayload{Content: "sebuah komentar"}, "user-123")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockThreadRepo.AssertNotCalled(t, "AddCommentToThread", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("invalid payload performs no insert", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-123").Return(nil).Once()

		u := ucase.NewService(mockThreadRepo)
		_, err := u.AddComment(context.TODO(), "thread-123", domain.AddCommentPayload{Content: float64(42)}, "user-123")

		assert.ErrorIs(t, err, domain.ErrAddCommentInvalidType)
		mockThreadRepo.AssertNotCalled(t, "AddCommentToThread", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("success runs checks in order", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-123").Return(nil).Once()
		mockThreadRepo.On("VerifyCommentExistence", mock.Anything, "comment-123").Return(nil).Once()
		mockThreadRepo.On("VerifyCommentOwnership", mock.Anything, "comment-123", "user-123").Return(nil).Once()
		mockThreadRepo.On("DeleteComment", mock.Anything, "comment-123").
			Return(domain.Comment{ID: "comment-123", IsDeleted: true}, nil).Once()

		u := ucase.NewService(mockThreadRepo)
		err := u.DeleteComment(context.TODO(), "thread-123", "comment-123", "user-123")

		assert.NoError(t, err)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("unauthenticated performs no repository call", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)

		u := ucase.NewService(mockThreadRepo)
		err := u.DeleteComment(context.TODO(), "thread-123", "comment-123", "")

		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		mockThreadRepo.AssertNotCalled(t, "VerifyThreadExistence", mock.Anything, mock.Anything)
	})

	t.Run("missing thread short-circuits every later check", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-404").Return(domain.ErrNotFound).Once()

		u := ucase.NewService(mockThreadRepo)
		err := u.DeleteComment(context.TODO(), "thread-404", "comment-123", "user-123")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockThreadRepo.AssertNotCalled(t, "VerifyCommentExistence", mock.Anything, mock.Anything)
		mockThreadRepo.AssertNotCalled(t, "VerifyCommentOwnership", mock.Anything, mock.Anything, mock.Anything)
		mockThreadRepo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("missing comment short-circuits ownership and delete", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-123").Return(nil).Once()
		mockThreadRepo.On("VerifyCommentExistence", mock.Anything, "comment-404").Return(domain.ErrNotFound).Once()

		u := ucase.NewService(mockThreadRepo)
		err := u.DeleteComment(context.TODO(), "thread-123", "comment-404", "user-123")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockThreadRepo.AssertNotCalled(t, "VerifyCommentOwnership", mock.Anything, mock.Anything, mock.Anything)
		mockThreadRepo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("foreign comment is never deleted", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-123").Return(nil).Once()
		mockThreadRepo.On("VerifyCommentExistence", mock.Anything, "comment-123").Return(nil).Once()
		mockThreadRepo.On("VerifyCommentOwnership", mock.Anything, "comment-123", "user-456").Return(domain.ErrForbidden).Once()

		u := ucase.NewService(mockThreadRepo)
		err := u.DeleteComment(context.TODO(), "thread-123", "comment-123", "user-456")

		assert.ErrorIs(t, err, domain.ErrForbidden)
		mockThreadRepo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
		mockThreadRepo.AssertExpectations(t)
	})
}

func TestGetThreadDetail(t *testing.T) {
	now := time.Now()
	mockThread := domain.ThreadWithAuthor{
		ID:       "thread-123",
		Title:    "sebuah thread",
		Body:     "sebuah body",
		Date:     now,
		Username: "dicoding",
	}

	t.Run("masks deleted comments and drops the flag", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-123").Return(nil).Once()
		mockThreadRepo.On("GetThreadByID", mock.Anything, "thread-123").Return(mockThread, nil).Once()
		mockThreadRepo.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return([]domain.CommentWithAuthor{
			{ID: "comment-1", Content: "komentar pertama", Date: now, IsDeleted: false, Username: "johndoe"},
			{ID: "comment-2", Content: "komentar rahasia", Date: now.Add(time.Minute), IsDeleted: true, Username: "dicoding"},
		}, nil).Once()

		u := ucase.NewService(mockThreadRepo)
		res, err := u.GetThreadDetail(context.TODO(), "thread-123")

		assert.NoError(t, err)
		assert.Equal(t, "thread-123", res.ID)
		assert.Equal(t, "dicoding", res.Username)
		require.Len(t, res.Comments, 2)
		// creation order is preserved
		assert.Equal(t, "komentar pertama", res.Comments[0].Content)
		assert.Equal(t, domain.DeletedCommentPlaceholder, res.Comments[1].Content)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("empty comment set yields empty slice", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-123").Return(nil).Once()
		mockThreadRepo.On("GetThreadByID", mock.Anything, "thread-123").Return(mockThread, nil).Once()
		mockThreadRepo.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return([]domain.CommentWithAuthor{}, nil).Once()

		u := ucase.NewService(mockThreadRepo)
		res, err := u.GetThreadDetail(context.TODO(), "thread-123")

		assert.NoError(t, err)
		assert.NotNil(t, res.Comments)
		assert.Empty(t, res.Comments)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("missing thread stops the pipeline", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockThreadRepo.On("VerifyThreadExistence", mock.Anything, "thread-404").Return(domain.ErrNotFound).Once()

		u := ucase.NewService(mockThreadRepo)
		_, err := u.GetThreadDetail(context.TODO(), "thread-404")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockThreadRepo.AssertNotCalled(t, "GetThreadByID", mock.Anything, mock.Anything)
		mockThreadRepo.AssertNotCalled(t, "GetCommentsByThreadID", mock.Anything, mock.Anything)
		mockThreadRepo.AssertExpectations(t)
	})
}
