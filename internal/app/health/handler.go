package health

import (
	"context"
	"net/http"

	"discussion/internal/utils"

	"github.com/gin-gonic/gin"
)

type Checker interface {
	Check(ctx context.Context) utils.HealthStatus
}

type Handler interface {
	Check(c *gin.Context)
}

type handler struct {
	checker Checker
}

func NewHandler(checker Checker) Handler {
	return &handler{checker: checker}
}

// @Summary Health check
// @Description Check the health of the comment store and cache
// @Tags Health
// @Produce json
// @Success 200 {object} utils.HealthStatus
// @Failure 503 {object} utils.HealthStatus
// @Router /api/health [get]
func (h *handler) Check(c *gin.Context) {
	status := h.checker.Check(c.Request.Context())
	if status.Status == "healthy" {
		c.JSON(http.StatusOK, status)
	} else {
		c.JSON(http.StatusServiceUnavailable, status)
	}
}
