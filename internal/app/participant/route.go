package participant

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	rg.GET("/threads/:thread_id/participants", handler.ListByThread)
}
