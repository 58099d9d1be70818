package salary

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// buildPayslipPDF renders the salary breakdown as a one-page A4 payslip.
func buildPayslipPDF(employeeName string, s *Salary) ([]byte, error) {
	period := fmt.Sprintf("%s %d", time.Month(s.SalaryMonth).String(), s.SalaryYear)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f", s.Gross))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Tax: %.2f", s.Tax))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Insurance: %.2f", s.Insurance))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Other deductions: %.2f", s.OtherDeductions))
	pdf.Ln(7)

	if len(s.Deductions) > 0 {
		pdf.SetFont("Helvetica", "I", 10)
		for _, d := range s.Deductions {
			unit := ""
			if d.IsPercentage {
				unit = "%"
			}
			pdf.Cell(0, 6, fmt.Sprintf("  - %s (%s): %.2f%s", d.Name, d.Kind, d.Value, unit))
			pdf.Ln(5)
		}
		pdf.SetFont("Helvetica", "", 12)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", s.Net))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
