package task

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

	tasks := r.Group("/tasks")

	tasks.Use(middleware.AuthMiddleware())

	{
		tasks.GET("", h.GetAll)
		tasks.GET("/employee/:id", h.GetByEmployee)
		tasks.GET("/:id", h.GetById)
		if redisClient != nil {
			tasks.POST("",
				middleware.Idempotency(redisClient),
				middleware.RateLimitByUser(1, 5),
				h.Create,
			)
		} else {
			tasks.POST("", middleware.RateLimitByUser(1, 5), h.Create)
		}
		tasks.PUT("/:id", middleware.RateLimitByUser(1, 5), h.Update)
		tasks.DELETE("/:id", middleware.RateLimitByUser(0.2, 1), h.Delete)
	}
}
