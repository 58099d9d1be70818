package inactivity

type CreateInactivityRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    *string `json:"end_date"`
	Reason     string  `json:"reason"`
	Type       string  `json:"type" binding:"required"`
}

type UpdateInactivityRequest struct {
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date"`
	Reason    string  `json:"reason"`
	Type      string  `json:"type" binding:"required"`
}

type EndInactivityRequest struct {
	EndDate string `json:"end_date" binding:"required"`
}

type InactivityResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	EmployeeID     string  `json:"employee_id"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	Reason         string  `json:"reason"`
	Type           string  `json:"type"`
	IsCurrent      bool    `json:"is_current"`
	DurationInDays int     `json:"duration_in_days"`
}
