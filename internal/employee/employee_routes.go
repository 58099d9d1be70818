package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(jwtSecret))
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetAll)
		employees.GET("/options", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetOptions)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employees", "create"), h.Create)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetById)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "employees", "update"), h.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employees", "delete"), h.Delete)
	}
}
