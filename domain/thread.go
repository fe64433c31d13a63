package domain

import (
	"context"
	"errors"
	"time"
)

// Thread is representing the Thread data struct
type Thread struct {
	ID    string    // Prefixed identifier (thread-<uuid>)
	Title string    // Thread title
	Body  string    // Thread body content
	Owner string    // User ID of the author
	Date  time.Time // Creation timestamp, assigned by the store
}

// ThreadWithAuthor is a thread joined with its author's username.
type ThreadWithAuthor struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// ThreadDetail is the read model for a single thread page: the thread,
// its author and the ordered comments with deleted contents masked.
type ThreadDetail struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
	Comments []CommentDetail
}

// Entity validation errors. The message strings are part of the API contract
// and get surfaced verbatim in fail responses.
var (
	ErrAddThreadMissingProperty = errors.New("ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddThreadInvalidType     = errors.New("ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// AddThreadPayload carries the raw request body for thread creation.
// Fields stay untyped so a missing property and a wrong-typed property
// remain distinguishable after JSON decoding.
type AddThreadPayload struct {
	Title any `json:"title"`
	Body  any `json:"body"`
}

// AddThread is the validated thread-creation entity.
type AddThread struct {
	Title string
	Body  string
}

// NewAddThread validates the payload and shapes it into an AddThread entity.
func NewAddThread(payload AddThreadPayload) (AddThread, error) {
	if payload.Title == nil || payload.Body == nil {
		return AddThread{}, ErrAddThreadMissingProperty
	}

	title, okTitle := payload.Title.(string)
	body, okBody := payload.Body.(string)
	if !okTitle || !okBody {
		return AddThread{}, ErrAddThreadInvalidType
	}

	return AddThread{Title: title, Body: body}, nil
}

// ThreadRepository defines the contract for thread and comment persistence.
// Any storage backend has to satisfy the whole capability set; the compiler
// enforces completeness, so unimplemented methods cannot exist at runtime.
type ThreadRepository interface {
	// AddThread inserts a new thread owned by the given user and returns
	// the persisted row including the generated id and timestamp.
	AddThread(ctx context.Context, thread AddThread, owner string) (Thread, error)

	// VerifyThreadExistence probes the thread by primary key.
	// Returns ErrNotFound if the thread doesn't exist.
	VerifyThreadExistence(ctx context.Context, threadID string) error

	// GetThreadByID retrieves a thread joined with its author's username.
	// Returns ErrNotFound if the thread doesn't exist.
	GetThreadByID(ctx context.Context, threadID string) (ThreadWithAuthor, error)

	// AddCommentToThread inserts a new comment owned by the given user.
	// Thread existence is the caller's responsibility; the insert does not re-check.
	AddCommentToThread(ctx context.Context, threadID string, comment AddComment, owner string) (Comment, error)

	// VerifyCommentExistence probes the comment by primary key.
	// Returns ErrNotFound if the comment doesn't exist.
	VerifyCommentExistence(ctx context.Context, commentID string) error

	// VerifyCommentOwnership probes for a comment matching both id and owner.
	// Returns ErrForbidden on mismatch or absence; the two cases are not
	// distinguished at this layer.
	VerifyCommentOwnership(ctx context.Context, commentID, ownerID string) error

	// DeleteComment flips is_deleted on the comment and returns the affected row.
	// Returns ErrNotFound when no row matches. Content is never physically removed.
	DeleteComment(ctx context.Context, commentID string) (Comment, error)

	// GetCommentsByThreadID returns every comment of the thread joined with the
	// author's username, ordered by date ascending. Deleted comments are included;
	// masking happens at the read layer. An empty thread yields an empty slice.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentWithAuthor, error)
}

// ThreadUsecase defines the business logic contract for thread operations.
// credentials is the user id resolved from a verified bearer token;
// an empty value means the caller is not authenticated.
type ThreadUsecase interface {
	AddThread(ctx context.Context, payload AddThreadPayload, credentials string) (Thread, error)
	AddComment(ctx context.Context, threadID string, payload AddCommentPayload, credentials string) (AddedComment, error)
	DeleteComment(ctx context.Context, threadID, commentID, credentials string) error

	// GetThreadDetail is public, it performs no authentication check.
	GetThreadDetail(ctx context.Context, threadID string) (ThreadDetail, error)
}
