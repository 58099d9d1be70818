package inactivity

import (
	"go-ems/internal/middleware"
	"go-ems/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	jwtSecret string,
) {
	inactivities := r.Group("/inactivities")
	inactivities.Use(middleware.AuthMiddleware(jwtSecret))
	{
		inactivities.GET("", middleware.RBACAuthorize(rbacService, "inactivities", "read"), h.GetAll)
		inactivities.POST("", middleware.RBACAuthorize(rbacService, "inactivities", "create"), h.Create)
		inactivities.GET("/:id", middleware.RBACAuthorize(rbacService, "inactivities", "read"), h.GetById)
		inactivities.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "inactivities", "read"), h.GetByEmployee)
		inactivities.GET("/employee/:employeeId/current", middleware.RBACAuthorize(rbacService, "inactivities", "read"), h.GetCurrentByEmployee)
		inactivities.PUT("/:id", middleware.RBACAuthorize(rbacService, "inactivities", "update"), h.Update)
		inactivities.POST("/:id/end", middleware.RBACAuthorize(rbacService, "inactivities", "update"), h.End)
		inactivities.DELETE("/:id", middleware.RBACAuthorize(rbacService, "inactivities", "delete"), h.Delete)
	}
}
