package thread

import (
	"context"

	"github.com/adiwarman/forum-api/domain"
)

type service struct {
	threadRepo domain.ThreadRepository
}

var _ domain.ThreadUsecase = (*service)(nil)

// NewService will create a new thread service object
func NewService(threadRepo domain.ThreadRepository) *service {
	return &service{
		threadRepo: threadRepo,
	}
}

func (s *service) AddThread(ctx context.Context, payload domain.AddThreadPayload, credentials string) (domain.Thread, error) {
	if credentials == "" {
		return domain.Thread{}, domain.ErrNotAuthenticated
	}

	addThread, err := domain.NewAddThread(payload)
	if err != nil {
		return domain.Thread{}, err
	}

	return s.threadRepo.AddThread(ctx, addThread, credentials)
}

func (s *service) AddComment(ctx context.Context, threadID string, payload domain.AddCommentPayload, credentials string) (domain.AddedComment, error) {
	if credentials == "" {
		return domain.AddedComment{}, domain.ErrNotAuthenticated
	}

	if err := s.threadRepo.VerifyThreadExistence(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	addComment, err := domain.NewAddComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}

	comment, err := s.threadRepo.AddCommentToThread(ctx, threadID, addComment, credentials)
	if err != nil {
		return domain.AddedComment{}, err
	}

	return domain.NewAddedComment(domain.AddedCommentPayload{
		ID:      comment.ID,
		Content: comment.Content,
		Owner:   comment.Owner,
	})
}

// DeleteComment runs its checks in a fixed order: thread existence, comment
// existence, then ownership. The first failing check short-circuits the rest,
// so a missing thread never surfaces as an authorization failure.
func (s *service) DeleteComment(ctx context.Context, threadID, commentID, credentials string) error {
	if credentials == "" {
		return domain.ErrNotAuthenticated
	}

	if err := s.threadRepo.VerifyThreadExistence(ctx, threadID); err != nil {
		return err
	}
	if err := s.threadRepo.VerifyCommentExistence(ctx, commentID); err != nil {
		return err
	}
	if err := s.threadRepo.VerifyCommentOwnership(ctx, commentID, credentials); err != nil {
		return err
	}

	_, err := s.threadRepo.DeleteComment(ctx, commentID)
	return err
}

func (s *service) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	if err := s.threadRepo.VerifyThreadExistence(ctx, threadID); err != nil {
		return domain.ThreadDetail{}, err
	}

	threadDetail, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.threadRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	formatted := make([]domain.CommentDetail, 0, len(comments))
	for _, comment := range comments {
		content := comment.Content
		if comment.IsDeleted {
			content = domain.DeletedCommentPlaceholder
		}
		formatted = append(formatted, domain.CommentDetail{
			ID:       comment.ID,
			Username: comment.Username,
			Date:     comment.Date,
			Content:  content,
		})
	}

	return domain.ThreadDetail{
		ID:       threadDetail.ID,
		Title:    threadDetail.Title,
		Body:     threadDetail.Body,
		Date:     threadDetail.Date,
		Username: threadDetail.Username,
		Comments: formatted,
	}, nil
}
