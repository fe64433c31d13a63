package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiwarman/forum-api/domain"
	"github.com/adiwarman/forum-api/internal/rest/request"
	"github.com/adiwarman/forum-api/internal/rest/response"
)

// UserHandler represent the httphandler for users and authentications
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register will create a new user account
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(domain.ErrBadParamInput.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	ctx := c.Request.Context()
	user, err := h.Service.Register(ctx, req.Username, req.Password, req.Fullname)
	if err != nil {
		c.JSON(errorBody(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedUser": response.NewAddedUserFromDomain(&user),
	}))
}

// Login verifies credentials and issues an access/refresh token pair
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(domain.ErrBadParamInput.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	ctx := c.Request.Context()
	tokens, err := h.Service.Login(ctx, req.Username, req.Password)
	if err != nil {
		c.JSON(errorBody(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	}))
}

// Refresh exchanges a known refresh token for a fresh access token
func (h *UserHandler) Refresh(c *gin.Context) {
	var req request.RefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(domain.ErrBadParamInput.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	ctx := c.Request.Context()
	accessToken, err := h.Service.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		c.JSON(errorBody(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"accessToken": accessToken,
	}))
}

// Logout revokes the given refresh token
func (h *UserHandler) Logout(c *gin.Context) {
	var req request.RefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(domain.ErrBadParamInput.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Logout(ctx, req.RefreshToken); err != nil {
		c.JSON(errorBody(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
