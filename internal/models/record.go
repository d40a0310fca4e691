package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode — способ оплаты; перечисление открытое, новые значения
// допускаются без изменения кода
type PaymentMode string

const (
	PaymentCash  PaymentMode = "cash"
	PaymentCard  PaymentMode = "card"
	PaymentUPI   PaymentMode = "upi"
	PaymentOther PaymentMode = "other"
)

// DispensingRecord — запись об отпуске топлива (read-модель, таблица
// dispensing_records). После создания не изменяется.
type DispensingRecord struct {
	ID               int64           `json:"id"`
	DispenserNo      string          `json:"dispenser_no"`
	NozzleNo         *string         `json:"nozzle_no,omitempty"`
	FuelGrade        *string         `json:"fuel_grade,omitempty"`
	Volume           decimal.Decimal `json:"volume"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMode      string          `json:"payment_mode"`
	VehicleNumber    string          `json:"vehicle_number"`
	TransactionDate  time.Time       `json:"transaction_date"`
	PaymentProofPath *string         `json:"payment_proof_path,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
