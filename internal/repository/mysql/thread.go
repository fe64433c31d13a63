package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adiwarman/forum-api/domain"
	"github.com/adiwarman/forum-api/internal/repository/mysql/model"
)

// IDGenerator produces the unique part of a prefixed identifier.
type IDGenerator func() string

type threadRepository struct {
	DB         *gorm.DB
	generateID IDGenerator
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository will create an implementation of domain.ThreadRepository.
// The id generator is injected so tests can pin generated identifiers.
func NewThreadRepository(db *gorm.DB, generateID IDGenerator) *threadRepository {
	return &threadRepository{
		DB:         db,
		generateID: generateID,
	}
}

func (m *threadRepository) AddThread(ctx context.Context, thread domain.AddThread, owner string) (domain.Thread, error) {
	threadModel := &model.Thread{
		ID:    "thread-" + m.generateID(),
		Title: thread.Title,
		Body:  thread.Body,
		Owner: owner,
	}

	if err := m.DB.WithContext(ctx).Create(threadModel).Error; err != nil {
		return domain.Thread{}, err
	}

	return threadModel.ToDomain(), nil
}

func (m *threadRepository) VerifyThreadExistence(ctx context.Context, threadID string) error {
	var thread model.Thread
	err := m.DB.WithContext(ctx).Select("id").First(&thread, "id = ?", threadID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// threadAuthorRow is the projection of a thread joined with its author.
type threadAuthorRow struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

func (m *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ThreadWithAuthor, error) {
	var row threadAuthorRow
	err := m.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.date, users.username").
		Joins("INNER JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ThreadWithAuthor{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.ThreadWithAuthor{}, err
	}

	return domain.ThreadWithAuthor{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.Date,
		Username: row.Username,
	}, nil
}

func (m *threadRepository) AddCommentToThread(ctx context.Context, threadID string, comment domain.AddComment, owner string) (domain.Comment, error) {
	commentModel := &model.Comment{
		ID:       "comment-" + m.generateID(),
		Content:  comment.Content,
		ThreadID: threadID,
		Owner:    owner,
	}

	if err := m.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return domain.Comment{}, err
	}

	return commentModel.ToDomain(), nil
}

func (m *threadRepository) VerifyCommentExistence(ctx context.Context, commentID string) error {
	var comment model.Comment
	err := m.DB.WithContext(ctx).Select("id").First(&comment, "id = ?", commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func (m *threadRepository) VerifyCommentOwnership(ctx context.Context, commentID, ownerID string) error {
	var comment model.Comment
	err := m.DB.WithContext(ctx).Select("id").First(&comment, "id = ? AND owner = ?", commentID, ownerID).Error
	// Absence and wrong owner resolve to the same error on purpose; callers
	// that care about existence check it separately beforehand.
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrForbidden
	}
	return err
}

func (m *threadRepository) DeleteComment(ctx context.Context, commentID string) (domain.Comment, error) {
	result := m.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("is_deleted", true)
	if result.Error != nil {
		return domain.Comment{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Comment{}, domain.ErrNotFound
	}

	var comment model.Comment
	if err := m.DB.WithContext(ctx).First(&comment, "id = ?", commentID).Error; err != nil {
		return domain.Comment{}, err
	}
	return comment.ToDomain(), nil
}

// commentAuthorRow is the projection of a comment joined with its author.
type commentAuthorRow struct {
	ID        string
	Content   string
	Date      time.Time
	IsDeleted bool
	Username  string
}

func (m *threadRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentWithAuthor, error) {
	var rows []commentAuthorRow
	err := m.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.content, comments.date, comments.is_deleted, users.username").
		Joins("INNER JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentWithAuthor, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.CommentWithAuthor{
			ID:        row.ID,
			Content:   row.Content,
			Date:      row.Date,
			IsDeleted: row.IsDeleted,
			Username:  row.Username,
		})
	}
	return res, nil
}
