package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fuelops/dispensing-service/internal/models"
	"github.com/fuelops/dispensing-service/internal/service"
)

// ToCommand преобразует форму в команду use case; числовые поля разбираются
// здесь, содержательная валидация остаётся за сервисом
func (f CreateRecordForm) ToCommand() (service.CreateRecordCommand, error) {
	volume, err := decimal.NewFromString(strings.TrimSpace(f.Volume))
	if err != nil {
		return service.CreateRecordCommand{}, ErrBadVolume
	}
	amount := decimal.Zero
	if a := strings.TrimSpace(f.Amount); a != "" {
		amount, err = decimal.NewFromString(a)
		if err != nil {
			return service.CreateRecordCommand{}, ErrBadAmount
		}
	}
	return service.CreateRecordCommand{
		DispenserNo:   f.DispenserNo,
		NozzleNo:      f.NozzleNo,
		FuelGrade:     f.FuelGrade,
		Volume:        volume,
		Amount:        amount,
		PaymentMode:   f.PaymentMode,
		VehicleNumber: f.VehicleNumber,
	}, nil
}

// ToListQuery собирает запрос выборки из сырых query-параметров
func ToListQuery(dispenserNo, paymentMode, startDate, endDate, page, pageSize string) (service.ListQuery, error) {
	start, err := ParseDate(startDate, ErrBadStartDate)
	if err != nil {
		return service.ListQuery{}, err
	}
	end, err := ParseDate(endDate, ErrBadEndDate)
	if err != nil {
		return service.ListQuery{}, err
	}
	p, err := ParsePositiveInt(page, 1, ErrBadPage)
	if err != nil {
		return service.ListQuery{}, err
	}
	ps, err := ParsePositiveInt(pageSize, 10, ErrBadPageSize)
	if err != nil {
		return service.ListQuery{}, err
	}
	if ps > 100 {
		ps = 100
	}
	return service.ListQuery{
		DispenserNo: strings.TrimSpace(dispenserNo),
		PaymentMode: strings.ToLower(strings.TrimSpace(paymentMode)),
		StartDate:   start,
		EndDate:     end,
		Page:        p,
		PageSize:    ps,
	}, nil
}

// FromModel — проекция доменной записи в ответ API
func FromModel(rec models.DispensingRecord) Record {
	return Record{
		ID:               rec.ID,
		DispenserNo:      rec.DispenserNo,
		NozzleNo:         rec.NozzleNo,
		FuelGrade:        rec.FuelGrade,
		Volume:           rec.Volume,
		Amount:           rec.Amount,
		PaymentMode:      rec.PaymentMode,
		VehicleNumber:    rec.VehicleNumber,
		TransactionDate:  rec.TransactionDate,
		PaymentProofPath: rec.PaymentProofPath,
		CreatedAt:        rec.CreatedAt,
	}
}

// FromModels — страница записей
func FromModels(recs []models.DispensingRecord) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromModel(r))
	}
	return out
}
