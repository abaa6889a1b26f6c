package comment

import (
	"discussion/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	threads := rg.Group("/threads/:thread_id/comments")
	{
		threads.GET("", handler.GetThread)
		threads.POST("", middleware.RequireActor(), handler.CreateComment)
	}

	comments := rg.Group("/comments", middleware.RequireActor())
	{
		comments.PATCH("/:id", handler.EditComment)
		comments.DELETE("/:id", handler.DeleteComment)
	}
}
