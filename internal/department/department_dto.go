package department

type CreateDepartmentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Budget       float64 `json:"budget" binding:"gte=0"`
	BudgetPeriod string  `json:"budget_period" binding:"required,oneof=MONTHLY YEARLY"`
}

type UpdateDepartmentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Budget       float64 `json:"budget" binding:"gte=0"`
	BudgetPeriod string  `json:"budget_period" binding:"required,oneof=MONTHLY YEARLY"`
}

type DepartmentResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Budget       float64 `json:"budget"`
	BudgetPeriod string  `json:"budget_period"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type BudgetStatusResponse struct {
	DepartmentID    string  `json:"department_id"`
	Name            string  `json:"name"`
	Budget          float64 `json:"budget"`
	BudgetPeriod    string  `json:"budget_period"`
	CurrentExpenses float64 `json:"current_expenses"`
	UsagePercentage float64 `json:"usage_percentage"`
	Overrun         bool    `json:"overrun"`
}
