package auth

import (
	"orgdir/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")

	{
		authGroup.POST("/signup", middleware.RateLimitByIP(0.1, 2), h.Signup)
		authGroup.POST("/login", middleware.RateLimitByIP(0.08, 5), h.Login)
		authGroup.DELETE("/:id", middleware.AuthMiddleware(), h.DeleteAccount)
	}
}
