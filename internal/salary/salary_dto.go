package salary

type DeductionInput struct {
	Name         string  `json:"name" binding:"required"`
	Kind         string  `json:"kind" binding:"required,oneof=TAX INSURANCE CUSTOM"`
	Value        float64 `json:"value" binding:"gte=0"`
	IsPercentage bool    `json:"is_percentage"`
}

type CreateSalaryRequest struct {
	EmployeeID  string           `json:"employee_id" binding:"required"`
	Gross       float64          `json:"gross" binding:"gte=0"`
	SalaryMonth int              `json:"salary_month" binding:"required,min=1,max=12"`
	SalaryYear  int              `json:"salary_year" binding:"required,min=2000"`
	Deductions  []DeductionInput `json:"deductions" binding:"dive"`
}

// UpdateSalaryRequest carries no employee id: a salary stays attached to
// the employee it was created for.
type UpdateSalaryRequest struct {
	Gross       float64          `json:"gross" binding:"gte=0"`
	SalaryMonth int              `json:"salary_month" binding:"required,min=1,max=12"`
	SalaryYear  int              `json:"salary_year" binding:"required,min=2000"`
	Deductions  []DeductionInput `json:"deductions" binding:"dive"`
}

type DeductionResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Kind         string  `json:"kind"`
	Value        float64 `json:"value"`
	IsPercentage bool    `json:"is_percentage"`
}

type SalaryResponse struct {
	ID              string              `json:"id"`
	CompanyID       string              `json:"company_id"`
	EmployeeID      string              `json:"employee_id"`
	Gross           float64             `json:"gross"`
	Tax             float64             `json:"tax"`
	Insurance       float64             `json:"insurance"`
	OtherDeductions float64             `json:"other_deductions"`
	Net             float64             `json:"net"`
	SalaryMonth     int                 `json:"salary_month"`
	SalaryYear      int                 `json:"salary_year"`
	Deductions      []DeductionResponse `json:"deductions"`
}
