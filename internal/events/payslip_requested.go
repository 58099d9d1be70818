package events

import "time"

const SalaryPayslipRequestedTopic = "ems.salary.payslip.v1"

type SalaryPayslipRequestedEvent struct {
	EventType  string    `json:"event_type"`
	SalaryID   string    `json:"salary_id"`
	CompanyID  string    `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
