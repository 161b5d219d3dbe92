package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// RenderPDF builds a PDF rendition of the same export table the CSV
// carries, one row per transaction, newest first.
func RenderPDF(telegramID int64, rows []Row) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Hamyon Transactions", false)
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, "Hamyon Transaction History")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("User: %d", telegramID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(9)

	widths := []float64{38, 20, 28, 32, 55, 42, 24, 20}
	headers := []string{"Created", "Type", "Amount", "Category", "Description", "Merchant", "Date", "Source"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(7)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{
			row.CreatedAt.Format("2006-01-02 15:04"),
			row.Type,
			fmt.Sprintf("%d", row.Amount),
			tr(row.Category),
			tr(deref(row.Description)),
			tr(deref(row.Merchant)),
			row.Day,
			row.Source,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "", 0, "L", false, 0, "")
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
