package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adiwarman/forum-api/domain"
	"github.com/adiwarman/forum-api/internal/rest/middleware"
	"github.com/adiwarman/forum-api/internal/rest/response"
)

// ThreadHandler represent the httphandler for threads and their comments
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will create a new thread owned by the authenticated caller
func (h *ThreadHandler) Store(c *gin.Context) {
	var payload domain.AddThreadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(domain.ErrBadParamInput.Error()))
		return
	}

	credentials := c.GetString(middleware.ContextUserIDKey)

	ctx := c.Request.Context()
	thread, err := h.Service.AddThread(ctx, payload, credentials)
	if err != nil {
		c.JSON(errorBody(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedThread": response.NewAddedThreadFromDomain(&thread),
	}))
}

// CreateComment will add a comment to an existing thread
func (h *ThreadHandler) CreateComment(c *gin.Context) {
	var payload domain.AddCommentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(domain.ErrBadParamInput.Error()))
		return
	}

	threadID := c.Param("threadId")
	credentials := c.GetString(middleware.ContextUserIDKey)

	ctx := c.Request.Context()
	addedComment, err := h.Service.AddComment(ctx, threadID, payload, credentials)
	if err != nil {
		c.JSON(errorBody(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedComment": addedComment,
	}))
}

// DeleteComment will soft-delete the caller's comment from a thread
func (h *ThreadHandler) DeleteComment(c *gin.Context) {
	threadID := c.Param("threadId")
	commentID := c.Param("commentId")
	credentials := c.GetString(middleware.ContextUserIDKey)

	ctx := c.Request.Context()
	if err := h.Service.DeleteComment(ctx, threadID, commentID, credentials); err != nil {
		c.JSON(errorBody(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}

// GetThreadDetail will get a thread with its comments. No auth required.
func (h *ThreadHandler) GetThreadDetail(c *gin.Context) {
	threadID := c.Param("threadId")

	ctx := c.Request.Context()
	detail, err := h.Service.GetThreadDetail(ctx, threadID)
	if err != nil {
		c.JSON(errorBody(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"thread": response.NewThreadDetailFromDomain(&detail),
	}))
}

// getStatusCode will get the http code matching the domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrAddThreadMissingProperty),
		errors.Is(err, domain.ErrAddThreadInvalidType),
		errors.Is(err, domain.ErrAddCommentMissingProperty),
		errors.Is(err, domain.ErrAddCommentInvalidType),
		errors.Is(err, domain.ErrAddedCommentMissingProperty),
		errors.Is(err, domain.ErrAddedCommentInvalidType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorBody maps a domain error to its status code and response envelope.
// Anything unrecognized becomes a generic 500 so internals never leak.
func errorBody(err error) (int, response.Body) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		return code, response.Error(domain.ErrInternalServerError.Error())
	}
	return code, response.Fail(err.Error())
}
