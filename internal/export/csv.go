package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"
)

var csvHeader = []string{"created_at", "type", "amount", "category", "description", "merchant", "date", "source"}

// RenderCSV writes the export table as UTF-8 CSV. Optional fields render
// as empty cells, never as a null literal.
func RenderCSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			row.CreatedAt.Format(time.RFC3339),
			row.Type,
			strconv.FormatInt(row.Amount, 10),
			row.Category,
			deref(row.Description),
			deref(row.Merchant),
			row.Day,
			row.Source,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
