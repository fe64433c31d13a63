package response

import "github.com/adiwarman/forum-api/domain"

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Owner string `json:"owner"`
	Date  string `json:"date"`
}

// NewAddedThreadFromDomain: Domain -> Response
func NewAddedThreadFromDomain(t *domain.Thread) AddedThread {
	return AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Body:  t.Body,
		Owner: t.Owner,
		Date:  t.Date.Format(DateTimeFormat),
	}
}

type ThreadComment struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []ThreadComment `json:"comments"`
}

// NewThreadDetailFromDomain: Domain -> Response.
// Comments always serializes as an array, never null.
func NewThreadDetailFromDomain(t *domain.ThreadDetail) ThreadDetail {
	comments := make([]ThreadComment, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, ThreadComment{
			ID:       c.ID,
			Username: c.Username,
			Date:     c.Date.Format(DateTimeFormat),
			Content:  c.Content,
		})
	}
	return ThreadDetail{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date.Format(DateTimeFormat),
		Username: t.Username,
		Comments: comments,
	}
}
