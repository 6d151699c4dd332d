package controllers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/models"
	"github.com/Akhil-047/PayOrbit/utils"
)

type paymentReportSummary struct {
	TotalPayments   int
	SuccessCount    int
	FailedCount     int
	ProcessingCount int
	CapturedAmount  int64
	SuccessRate     float64
}

func reportPeriodRange(period string) (time.Time, time.Time, bool) {
	now := time.Now()
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		return start, end, true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, true
	case "month":
		return now.AddDate(0, 0, -30).Truncate(24 * time.Hour), now.Add(24 * time.Hour), true
	}
	return time.Time{}, time.Time{}, false
}

func fetchReportPayments(c *gin.Context, merchant models.Merchant, period string) ([]models.Payment, paymentReportSummary, bool) {
	startDate, endDate, ok := reportPeriodRange(period)
	if !ok {
		utils.LogError("Invalid report period specified: %s", period)
		utils.BadRequest(c, "period must be day, week, or month")
		return nil, paymentReportSummary{}, false
	}

	var payments []models.Payment
	err := config.DB.
		Where("merchant_id = ? AND created_at >= ? AND created_at <= ?", merchant.ID, startDate, endDate).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		utils.LogError("Failed to fetch payments for report: %v", err)
		utils.InternalServerError(c)
		return nil, paymentReportSummary{}, false
	}
	utils.LogDebug("Retrieved %d payments for %s report", len(payments), period)

	var summary paymentReportSummary
	for _, payment := range payments {
		summary.TotalPayments++
		switch payment.Status {
		case models.PaymentStatusSuccess:
			summary.SuccessCount++
			summary.CapturedAmount += payment.Amount
		case models.PaymentStatusFailed:
			summary.FailedCount++
		default:
			summary.ProcessingCount++
		}
	}
	if summary.TotalPayments > 0 {
		summary.SuccessRate = math.Round(float64(summary.SuccessCount)/float64(summary.TotalPayments)*10000) / 100
	}

	return payments, summary, true
}

func paymentInstrument(payment models.Payment) string {
	if payment.VPA != "" {
		return payment.VPA
	}
	if payment.CardNetwork != "" {
		return payment.CardNetwork + " •••• " + payment.CardLast4
	}
	return "-"
}

// amountDisplay renders minor units as a decimal major-unit string.
func amountDisplay(amount int64) string {
	return fmt.Sprintf("%.2f", float64(amount)/100)
}

// DownloadPaymentsReportExcel handles GET /api/v1/reports/payments/excel
func DownloadPaymentsReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadPaymentsReportExcel called")
	merchant := c.MustGet("merchant").(models.Merchant)

	period := c.DefaultQuery("period", "day")
	payments, summary, ok := fetchReportPayments(c, merchant, period)
	if !ok {
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("PAYORBIT - Payments Report")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Merchant: " + merchant.Name + " (" + merchant.ID + ")")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Period: " + strings.ToUpper(period))
	sheet.AddRow() // spacing

	headers := []string{"Payment ID", "Order ID", "Date", "Method", "Instrument", "Amount", "Currency", "Status", "Error"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, payment := range payments {
		row := sheet.AddRow()
		row.AddCell().SetString(payment.ID)
		row.AddCell().SetString(payment.OrderID)
		row.AddCell().SetString(payment.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(payment.Method)
		row.AddCell().SetString(paymentInstrument(payment))
		row.AddCell().SetString(amountDisplay(payment.Amount))
		row.AddCell().SetString(payment.Currency)
		row.AddCell().SetString(payment.Status)
		row.AddCell().SetString(payment.ErrorCode)
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Payments", fmt.Sprintf("%d", summary.TotalPayments)},
		{"Successful", fmt.Sprintf("%d", summary.SuccessCount)},
		{"Failed", fmt.Sprintf("%d", summary.FailedCount)},
		{"Processing", fmt.Sprintf("%d", summary.ProcessingCount)},
		{"Captured Amount", amountDisplay(summary.CapturedAmount)},
		{"Success Rate (%)", fmt.Sprintf("%.2f", summary.SuccessRate)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.LogInfo("Generated Excel payments report for merchant %s, period %s", merchant.ID, period)
}

// DownloadPaymentsReportPDF handles GET /api/v1/reports/payments/pdf
func DownloadPaymentsReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadPaymentsReportPDF called")
	merchant := c.MustGet("merchant").(models.Merchant)

	period := c.DefaultQuery("period", "day")
	payments, summary, ok := fetchReportPayments(c, merchant, period)
	if !ok {
		return
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "PAYORBIT - Payments Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Merchant: "+merchant.Name+" ("+merchant.ID+")")
	pdf.Ln(6)
	pdf.Cell(0, 8, "Period: "+strings.ToUpper(period))
	pdf.Ln(10)

	headers := []string{"Payment ID", "Order ID", "Date", "Method", "Instrument", "Amount", "Currency", "Status", "Error"}
	colWidths := []float64{42, 42, 32, 18, 42, 25, 20, 25, 30}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, payment := range payments {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, payment.ID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, payment.OrderID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, payment.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, payment.Method, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, paymentInstrument(payment), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, amountDisplay(payment.Amount), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, payment.Currency, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[7], 8, payment.Status, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[8], 8, payment.ErrorCode, "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(90, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	summaryData := [][]string{
		{"Total Payments", fmt.Sprintf("%d", summary.TotalPayments)},
		{"Successful", fmt.Sprintf("%d", summary.SuccessCount)},
		{"Failed", fmt.Sprintf("%d", summary.FailedCount)},
		{"Processing", fmt.Sprintf("%d", summary.ProcessingCount)},
		{"Captured Amount", amountDisplay(summary.CapturedAmount)},
		{"Success Rate (%)", fmt.Sprintf("%.2f", summary.SuccessRate)},
	}
	for _, data := range summaryData {
		pdf.CellFormat(50, 8, data[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, data[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments_report_%s.pdf", period))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.LogInfo("Generated PDF payments report for merchant %s, period %s", merchant.ID, period)
}
