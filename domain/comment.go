package domain

import (
	"errors"
	"time"
)

// DeletedCommentPlaceholder replaces the content of a soft-deleted comment
// on every read path. The original content never leaves the store.
const DeletedCommentPlaceholder = "**komentar telah dihapus**"

// Comment is representing the Comment data struct
type Comment struct {
	ID        string    // Prefixed identifier (comment-<uuid>)
	Content   string    // Comment text
	ThreadID  string    // Owning thread
	Owner     string    // User ID of the author
	Date      time.Time // Creation timestamp, assigned by the store
	IsDeleted bool      // Soft-delete flag, defaults false
}

// CommentWithAuthor is a comment joined with its author's username,
// as returned by the storage layer. IsDeleted is carried through so the
// use-case layer can decide how to render the content.
type CommentWithAuthor struct {
	ID        string
	Content   string
	Date      time.Time
	IsDeleted bool
	Username  string
}

// CommentDetail is the read model of a single comment inside a thread
// detail: the soft-delete flag is already folded into Content.
type CommentDetail struct {
	ID       string
	Username string
	Date     time.Time
	Content  string
}

var (
	ErrAddCommentMissingProperty = errors.New("ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddCommentInvalidType     = errors.New("ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")

	ErrAddedCommentMissingProperty = errors.New("ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddedCommentInvalidType     = errors.New("ADDED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// AddCommentPayload carries the raw request body for comment creation.
type AddCommentPayload struct {
	Content any `json:"content"`
}

// AddComment is the validated comment-creation entity.
type AddComment struct {
	Content string
}

// NewAddComment validates the payload and shapes it into an AddComment entity.
func NewAddComment(payload AddCommentPayload) (AddComment, error) {
	if payload.Content == nil {
		return AddComment{}, ErrAddCommentMissingProperty
	}

	content, ok := payload.Content.(string)
	if !ok {
		return AddComment{}, ErrAddCommentInvalidType
	}

	return AddComment{Content: content}, nil
}

// AddedCommentPayload carries the persisted values used to assemble the
// comment-creation response. Date is deliberately not part of it.
type AddedCommentPayload struct {
	ID      any
	Content any
	Owner   any
}

// AddedComment is the output entity of comment creation.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// NewAddedComment shapes persisted comment values into the response entity,
// mirroring the presence/type checks of the input entities.
func NewAddedComment(payload AddedCommentPayload) (AddedComment, error) {
	if payload.ID == nil || payload.Content == nil || payload.Owner == nil {
		return AddedComment{}, ErrAddedCommentMissingProperty
	}

	id, okID := payload.ID.(string)
	content, okContent := payload.Content.(string)
	owner, okOwner := payload.Owner.(string)
	if !okID || !okContent || !okOwner {
		return AddedComment{}, ErrAddedCommentInvalidType
	}

	return AddedComment{ID: id, Content: content, Owner: owner}, nil
}
