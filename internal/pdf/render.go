package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/fuelops/dispensing-service/internal/models"
)

// Render строит одностраничный PDF по записи об отпуске топлива
func Render(rec models.DispensingRecord) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Fuel Dispensing Record #%d", rec.ID), false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 12, "Fuel Dispensing Record", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("Record #%d", rec.ID), "", 1, "C", false, 0, "")
	doc.Ln(6)

	rows := [][2]string{
		{"Dispenser No", rec.DispenserNo},
		{"Nozzle No", deref(rec.NozzleNo)},
		{"Fuel Grade", deref(rec.FuelGrade)},
		{"Volume (L)", rec.Volume.StringFixed(3)},
		{"Amount", rec.Amount.StringFixed(2)},
		{"Payment Mode", rec.PaymentMode},
		{"Vehicle Number", rec.VehicleNumber},
		{"Transaction Date", rec.TransactionDate.Format(time.RFC3339)},
		{"Payment Proof", deref(rec.PaymentProofPath)},
		{"Created At", rec.CreatedAt.Format(time.RFC3339)},
	}

	doc.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(60, 9, row[0], "1", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		v := row[1]
		if v == "" {
			v = "-"
		}
		doc.CellFormat(120, 9, v, "1", 1, "L", false, 0, "")
	}

	doc.Ln(8)
	doc.SetFont("Helvetica", "I", 8)
	doc.CellFormat(0, 5, fmt.Sprintf("Generated at %s", time.Now().UTC().Format(time.RFC3339)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename — имя вложения для скачивания
func Filename(rec models.DispensingRecord, now time.Time) string {
	return fmt.Sprintf("FuelRecord_%d_%s_%s.pdf", rec.ID, rec.DispenserNo, now.Format("20060102"))
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
