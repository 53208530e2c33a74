package export

import (
	"bytes"
	"fmt"
	"time"

	usecaseport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	"github.com/phpdave11/gofpdf"
)

// PDFExporter renders an analytics report to a PDF document
type PDFExporter struct{}

// NewPDFExporter creates a new PDFExporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Render builds the PDF report: summary cards, a twelve-month bar chart, the
// expense category breakdown and the transaction table.
func (e *PDFExporter) Render(report *usecaseport.ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Smart Finance Tracker Report", false)
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "Financial Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Generated: "+report.GeneratedAt.Format(time.RFC1123))
	pdf.Ln(10)

	e.renderSummary(pdf, report)
	e.renderBarChart(pdf, report)
	e.renderCategories(pdf, report)
	e.renderTransactions(pdf, report)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf build failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) renderSummary(pdf *gofpdf.Fpdf, report *usecaseport.ReportData) {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{45.5, 45.5, 45.5, 45.5}
	pdf.CellFormat(sumW[0], 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expense", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Balance", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[3], 10, "Savings Rate", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, fmt.Sprintf("%.2f", report.Summary.Income), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, fmt.Sprintf("%.2f", report.Summary.Expense), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, fmt.Sprintf("%.2f", report.Summary.Balance), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[3], 10, report.Summary.SavingsRate+"%", "1", 1, "C", false, 0, "")
	pdf.Ln(8)
}

// renderBarChart draws paired income/expense bars per calendar month
func (e *PDFExporter) renderBarChart(pdf *gofpdf.Fpdf, report *usecaseport.ReportData) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Monthly Overview")
	pdf.Ln(10)

	maxVal := 0.0
	for i := 0; i < 12; i++ {
		if report.MonthlyIncome[i] > maxVal {
			maxVal = report.MonthlyIncome[i]
		}
		if report.MonthlyExpense[i] > maxVal {
			maxVal = report.MonthlyExpense[i]
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	const (
		chartHeight = 40.0
		groupWidth  = 15.0
		barWidth    = 5.5
	)
	baseX := pdf.GetX()
	baseY := pdf.GetY() + chartHeight

	for i := 0; i < 12; i++ {
		x := baseX + float64(i)*groupWidth

		incomeH := chartHeight * report.MonthlyIncome[i] / maxVal
		expenseH := chartHeight * report.MonthlyExpense[i] / maxVal

		pdf.SetFillColor(77, 150, 255)
		pdf.Rect(x, baseY-incomeH, barWidth, incomeH, "F")
		pdf.SetFillColor(235, 87, 87)
		pdf.Rect(x+barWidth+1, baseY-expenseH, barWidth, expenseH, "F")
	}

	pdf.SetDrawColor(150, 150, 150)
	pdf.Line(baseX, baseY, baseX+12*groupWidth, baseY)

	pdf.SetY(baseY + 1)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(80, 80, 80)
	for i := 0; i < 12; i++ {
		pdf.SetX(baseX + float64(i)*groupWidth)
		pdf.CellFormat(groupWidth, 4, monthLabels[i], "", 0, "L", false, 0, "")
	}
	pdf.Ln(10)
}

func (e *PDFExporter) renderCategories(pdf *gofpdf.Fpdf, report *usecaseport.ReportData) {
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Expense Categories")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(120, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(62, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if len(report.Categories) == 0 {
		pdf.CellFormat(182, 8, "No expenses in this period", "1", 1, "C", false, 0, "")
	}
	for _, row := range report.Categories {
		pdf.CellFormat(120, 8, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(62, 8, fmt.Sprintf("%.2f", row.Value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func (e *PDFExporter) renderTransactions(pdf *gofpdf.Fpdf, report *usecaseport.ReportData) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Transactions")
	pdf.Ln(9)

	colW := []float64{30, 30, 92, 30}
	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colW[0], 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "TYPE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[2], 8, "CATEGORY", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[3], 8, "AMOUNT", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	writeHeader()

	pdf.SetTextColor(30, 30, 30)
	for _, tx := range report.Transactions {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader()
		}

		pdf.CellFormat(colW[0], 8, tx.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, string(tx.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 8, tx.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 8, fmt.Sprintf("%.2f", tx.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated by Smart Finance Tracker", "", 0, "C", false, 0, "")
}
