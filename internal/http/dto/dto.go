package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// Record — представление записи в ответах API
type Record struct {
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

type CreateRecordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Record  Record `json:"record"`
}

type GetRecordResponse struct {
	Success bool   `json:"success"`
	Record  Record `json:"record"`
}

type ListRecordsResponse struct {
	Success    bool     `json:"success"`
	Records    []Record `json:"records"`
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
}

// CreateRecordForm — поля multipart-формы создания записи
type CreateRecordForm struct {
	DispenserNo   string
	NozzleNo      string
	FuelGrade     string
	Volume        string
	Amount        string
	PaymentMode   string
	VehicleNumber string
}
