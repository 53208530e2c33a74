package export

import (
	"fmt"

	usecaseport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	"github.com/xuri/excelize/v2"
)

// ExcelExporter renders an analytics report to an Excel workbook
type ExcelExporter struct{}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Render builds a workbook with a summary sheet and the transaction table
func (e *ExcelExporter) Render(report *usecaseport.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	summarySheet := "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	summaryRows := [][]any{
		{"Income", report.Summary.Income},
		{"Expense", report.Summary.Expense},
		{"Balance", report.Summary.Balance},
		{"Savings Rate (%)", report.Summary.SavingsRate},
	}
	for i, row := range summaryRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to build workbook: %w", err)
		}
	}

	monthHeader := []any{"Month", "Income", "Expense"}
	if err := f.SetSheetRow(summarySheet, "A6", &monthHeader); err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}
	for i := 0; i < 12; i++ {
		row := []any{monthLabels[i], report.MonthlyIncome[i], report.MonthlyExpense[i]}
		cell := fmt.Sprintf("A%d", 7+i)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to build workbook: %w", err)
		}
	}

	txSheet := "Transactions"
	index, err := f.NewSheet(txSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	header := []any{"Date", "Type", "Category", "Amount"}
	if err := f.SetSheetRow(txSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}
	for i, tx := range report.Transactions {
		row := []any{tx.Date.Format("2006-01-02"), string(tx.Type), tx.Category, tx.Amount}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(txSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to build workbook: %w", err)
		}
	}

	_ = f.SetColWidth(txSheet, "A", "A", 14)
	_ = f.SetColWidth(txSheet, "C", "C", 24)
	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
