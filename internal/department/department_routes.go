package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware(jwtSecret))
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "departments", "read"), h.GetAll)
		departments.POST("", middleware.RBACAuthorize(rbacService, "departments", "create"), h.Create)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "departments", "read"), h.GetById)
		departments.GET("/:id/budget", middleware.RBACAuthorize(rbacService, "departments", "read"), h.GetBudgetStatus)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, "departments", "update"), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "departments", "delete"), h.Delete)
	}
}
