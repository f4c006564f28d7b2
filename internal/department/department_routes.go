package department

import (
	"orgdir/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	departments := r.Group("/departments")

	departments.Use(middleware.AuthMiddleware())

	{
		departments.GET("", h.GetAll)
		departments.GET("/:id", h.GetById)
		if redisClient != nil {
			departments.POST("",
				middleware.Idempotency(redisClient),
				middleware.RateLimitByUser(0.5, 2),
				h.Create,
			)
		} else {
			departments.POST("", middleware.RateLimitByUser(0.5, 2), h.Create)
		}
		departments.PUT("/:id", middleware.RateLimitByUser(0.5, 2), h.Update)
		departments.DELETE("/:id", middleware.RateLimitByUser(0.2, 1), h.Delete)
	}
}
