package participant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListByThread(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List thread participants
// @Description Participants that can be mentioned in a thread, in mention-matching order
// @Tags Participant
// @Produce json
// @Param thread_id path string true "Thread ID"
// @Success 200 {object} ParticipantListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/threads/{thread_id}/participants [get]
func (h *handler) ListByThread(c *gin.Context) {
	threadID := c.Param("thread_id")
	participants, err := h.service.ListByThread(c.Request.Context(), threadID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list participants"})
		return
	}
	if participants == nil {
		participants = []*Participant{}
	}
	c.JSON(http.StatusOK, ParticipantListResponse{ThreadID: threadID, Participants: participants})
}
