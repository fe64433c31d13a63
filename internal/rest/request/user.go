package request

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type RegisterUser struct {
	Username string `json:"username" validate:"required,max=50,alphanum"`
	Password string `json:"password" validate:"required,min=6"`
	Fullname string `json:"fullname" validate:"required"`
}

func (r *RegisterUser) Validate() error {
	return validate.Struct(r)
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *Login) Validate() error {
	return validate.Struct(r)
}

type RefreshToken struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func (r *RefreshToken) Validate() error {
	return validate.Struct(r)
}
