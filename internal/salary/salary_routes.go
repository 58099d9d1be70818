package salary

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
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware(jwtSecret))
	{
		salaries.GET("", middleware.RBACAuthorize(rbacService, "salaries", "read"), h.GetAll)
		salaries.POST("", middleware.RBACAuthorize(rbacService, "salaries", "create"), h.Create)
		salaries.GET("/:id", middleware.RBACAuthorize(rbacService, "salaries", "read"), h.GetById)
		salaries.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "salaries", "read"), h.GetByEmployee)
		salaries.PUT("/:id", middleware.RBACAuthorize(rbacService, "salaries", "update"), h.Update)
		salaries.DELETE("/:id", middleware.RBACAuthorize(rbacService, "salaries", "delete"), h.Delete)
		salaries.GET("/:id/payslip", middleware.RBACAuthorize(rbacService, "salaries", "read"), h.GetPayslip)
		salaries.POST("/:id/payslip", middleware.RBACAuthorize(rbacService, "salaries", "read"), h.RequestPayslip)
	}
}
