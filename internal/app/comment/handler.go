package comment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"discussion/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler interface {
	GetThread(c *gin.Context)
	CreateComment(c *gin.Context)
	EditComment(c *gin.Context)
	DeleteComment(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{
		service: service,
		logger:  logger.Sugar(),
	}
}

// @Summary Get a comment thread
// @Description Returns the thread's comments as a forest sorted by creation time
// @Tags Comment
// @Produce json
// @Param thread_id path string true "Thread ID, e.g. task:42"
// @Param X-User-ID header string false "Viewer participant ID"
// @Success 200 {object} ThreadResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/threads/{thread_id}/comments [get]
func (h *handler) GetThread(c *gin.Context) {
	threadID := c.Param("thread_id")
	forest, err := h.service.GetThread(c.Request.Context(), threadID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ThreadResponse{
		ThreadID: threadID,
		Total:    forest.Len(),
		Comments: forest.Tree(middleware.ActorID(c)),
	})
}

// @Summary Post a comment or reply
// @Description Creates a root comment, or a reply when parent_id is set
// @Tags Comment
// @Accept json
// @Produce json
// @Param thread_id path string true "Thread ID"
// @Param X-User-ID header string true "Acting participant ID"
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} MutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "parent comment is deleted"
// @Failure 422 {object} ErrorResponse
// @Router /api/threads/{thread_id}/comments [post]
func (h *handler) CreateComment(c *gin.Context) {
	threadID := c.Param("thread_id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingMessage(err), Code: string(KindValidation)})
		return
	}

	actorID := middleware.ActorID(c)
	var (
		created *Comment
		err     error
	)
	if req.ParentID != nil && *req.ParentID != "" {
		created, err = h.service.Reply(c.Request.Context(), threadID, actorID, *req.ParentID, req.Content)
	} else {
		created, err = h.service.Post(c.Request.Context(), threadID, actorID, req.Content)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	setETag(c, created)
	c.JSON(http.StatusCreated, MutationResponse{State: MutationCommitted, Comment: created})
}

// @Summary Edit a comment
// @Description Replaces the content of a comment owned by the caller
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param X-User-ID header string true "Acting participant ID"
// @Param If-Match header string false "Expected comment version"
// @Param request body EditCommentRequest true "New content"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/comments/{id} [patch]
func (h *handler) EditComment(c *gin.Context) {
	var req EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingMessage(err), Code: string(KindValidation)})
		return
	}
	opts, ok := versionOptions(c)
	if !ok {
		return
	}

	updated, err := h.service.Edit(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.Content, opts...)
	if err != nil {
		h.writeError(c, err)
		return
	}

	setETag(c, updated)
	c.JSON(http.StatusOK, MutationResponse{State: MutationCommitted, Comment: updated})
}

// @Summary Delete a comment
// @Description Tombstones a comment owned by the caller; replies stay attached
// @Tags Comment
// @Produce json
// @Param id path string true "Comment ID"
// @Param X-User-ID header string true "Acting participant ID"
// @Param If-Match header string false "Expected comment version"
// @Success 200 {object} MutationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/comments/{id} [delete]
func (h *handler) DeleteComment(c *gin.Context) {
	opts, ok := versionOptions(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.ActorID(c), opts...)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{State: MutationCommitted, Comment: deleted})
}

func (h *handler) writeError(c *gin.Context, err error) {
	status := httpStatus(err)

	var domainErr *Error
	if errors.As(err, &domainErr) {
		c.JSON(status, ErrorResponse{Error: domainErr.Message, Code: string(domainErr.Kind)})
		return
	}

	h.logger.Errorw("Comment request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.JSON(status, ErrorResponse{Error: "internal error"})
}

// versionOptions reads an optional If-Match header. Both 3 and "3" are
// accepted.
func versionOptions(c *gin.Context) ([]MutationOption, bool) {
	raw := strings.TrimSpace(c.GetHeader("If-Match"))
	if raw == "" {
		return nil, true
	}
	raw = strings.Trim(strings.TrimPrefix(raw, "W/"), `"`)
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid If-Match version", Code: string(KindValidation)})
		return nil, false
	}
	return []MutationOption{IfVersion(v)}, true
}

func setETag(c *gin.Context, comment *Comment) {
	c.Header("ETag", strconv.Quote(strconv.Itoa(comment.Version)))
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
