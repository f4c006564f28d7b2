package employee

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

	employees := r.Group("/employees")

	employees.Use(middleware.AuthMiddleware())

	{
		employees.GET("", h.GetAll)
		employees.GET("/role/:role", h.GetByRole)
		employees.GET("/department/:id", h.GetByDepartment)
		employees.GET("/section/:id", h.GetBySection)
		employees.GET("/:id", h.GetById)
		if redisClient != nil {
			employees.POST("",
				middleware.Idempotency(redisClient),
				middleware.RateLimitByUser(0.5, 2),
				h.Create,
			)
		} else {
			employees.POST("", middleware.RateLimitByUser(0.5, 2), h.Create)
		}
		employees.PUT("/:id", middleware.RateLimitByUser(0.5, 2), h.Update)
		employees.DELETE("/:id", middleware.RateLimitByUser(0.2, 1), h.Delete)
	}
}
