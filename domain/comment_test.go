package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adiwarman/forum-api/domain"
)

func TestNewAddComment(t *testing.T) {
	t.Run("missing content", func(t *testing.T) {
		_, err := domain.NewAddComment(domain.AddCommentPayload{})
		assert.ErrorIs(t, err, domain.ErrAddCommentMissingProperty)
	})

	t.Run("non-string content", func(t *testing.T) {
		_, err := domain.NewAddComment(domain.AddCommentPayload{Content: true})
		assert.ErrorIs(t, err, domain.ErrAddCommentInvalidType)
	})

	t.Run("valid payload", func(t *testing.T) {
		addComment, err := domain.NewAddComment(domain.AddCommentPayload{Content: "keren banget"})
		assert.NoError(t, err)
		assert.Equal(t, "keren banget", addComment.Content)
	})
}

func TestNewAddedComment(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := domain.NewAddedComment(domain.AddedCommentPayload{
			ID:      "comment-123",
			Content: "sebuah komentar",
		})
		assert.ErrorIs(t, err, domain.ErrAddedCommentMissingProperty)
	})

	t.Run("non-string property", func(t *testing.T) {
		_, err := domain.NewAddedComment(domain.AddedCommentPayload{
			ID:      "comment-123",
			Content: 42,
			Owner:   "user-123",
		})
		assert.ErrorIs(t, err, domain.ErrAddedCommentInvalidType)
	})

	t.Run("valid payload", func(t *testing.T) {
		added, err := domain.NewAddedComment(domain.AddedCommentPayload{
			ID:      "comment-123",
			Content: "sebuah komentar",
			Owner:   "user-123",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.AddedComment{
			ID:      "comment-123",
			Content: "sebuah komentar",
			Owner:   "user-123",
		}, added)
	})
}
