package payroll

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF writes a payslip PDF under dir and returns the file path.
func RenderPDF(slip Payslip, employeeName, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("%s-%04d-%02d.pdf", slip.EmployeeID, slip.Year, slip.Month))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", monthLabel(slip.Month, slip.Year)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(100, 8, "Component")
	pdf.Cell(40, 8, "Category")
	pdf.Cell(0, 8, "Amount")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range slip.Components {
		pdf.Cell(100, 8, line.Name)
		pdf.Cell(40, 8, line.Category)
		pdf.Cell(0, 8, fmt.Sprintf("%.2f", line.Amount))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.Cell(0, 8, fmt.Sprintf("Gross earnings: %.2f", slip.GrossEarnings))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %.2f", slip.TotalDeductions))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %.2f", slip.NetSalary))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Days: %d present, %d absent, %d half, %d unpaid leave",
		slip.Breakdown.PresentDays, slip.Breakdown.AbsentDays,
		slip.Breakdown.HalfDays, slip.Breakdown.UnpaidLeaveDays))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
