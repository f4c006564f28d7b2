package section

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

	sections := r.Group("/sections")

	sections.Use(middleware.AuthMiddleware())

	{
		sections.GET("", h.GetAll)
		sections.GET("/department/:id", h.GetByDepartment)
		sections.GET("/:id", h.GetById)
		if redisClient != nil {
			sections.POST("",
				middleware.Idempotency(redisClient),
				middleware.RateLimitByUser(0.5, 2),
				h.Create,
			)
		} else {
			sections.POST("", middleware.RateLimitByUser(0.5, 2), h.Create)
		}
		sections.PUT("/:id", middleware.RateLimitByUser(0.5, 2), h.Update)
		sections.DELETE("/:id", middleware.RateLimitByUser(0.2, 1), h.Delete)
	}
}
