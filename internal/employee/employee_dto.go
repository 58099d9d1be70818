package employee

type CreateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	HireDate     string `json:"hire_date" binding:"required"`
	DepartmentID string `json:"department_id"`
}

type UpdateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	HireDate     string `json:"hire_date" binding:"required"`
	DepartmentID string `json:"department_id"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Position     string  `json:"position"`
	HireDate     string  `json:"hire_date"`
	DepartmentID string  `json:"department_id,omitempty"`
	Status       string  `json:"status"`
	InactiveFrom *string `json:"inactive_from,omitempty"`
	InactiveTo   *string `json:"inactive_to,omitempty"`
}

type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
