package response

import "github.com/adiwarman/forum-api/domain"

type AddedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// NewAddedUserFromDomain: Domain -> Response
func NewAddedUserFromDomain(u *domain.User) AddedUser {
	return AddedUser{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
	}
}
