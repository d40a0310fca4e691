package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fuelops/dispensing-service/internal/models"
)

// верхняя граница объёма одной заправки, литры
var maxVolume = decimal.NewFromInt(10000)

// Service реализует use case'ы учёта отпуска топлива
type Service struct {
	records RecordRepository
	files   AttachmentStore
	clock   Clock
}

func New(records RecordRepository, files AttachmentStore, clock Clock) *Service {
	return &Service{records: records, files: files, clock: clock}
}

// CreateRecord — основной сценарий: валидация, сохранение вложения, запись в
// БД. Шаги с побочными эффектами оформлены сагой: упавшая вставка в БД
// компенсируется удалением только что сохранённого файла, чтобы не оставлять
// осиротевших вложений.
func (s *Service) CreateRecord(ctx context.Context, cmd CreateRecordCommand) (models.DispensingRecord, error) {
	if err := validate(cmd); err != nil {
		return models.DispensingRecord{}, err
	}

	now := s.clock.Now().UTC()
	rec := models.DispensingRecord{
		DispenserNo:     strings.TrimSpace(cmd.DispenserNo),
		NozzleNo:        optional(cmd.NozzleNo),
		FuelGrade:       optional(cmd.FuelGrade),
		Volume:          cmd.Volume,
		Amount:          cmd.Amount,
		PaymentMode:     strings.ToLower(strings.TrimSpace(cmd.PaymentMode)),
		VehicleNumber:   strings.TrimSpace(cmd.VehicleNumber),
		TransactionDate: now,
	}

	var ref string
	steps := make([]step, 0, 2)
	if len(cmd.Attachment) > 0 {
		steps = append(steps, step{
			name: "store attachment",
			run: func(ctx context.Context) error {
				r, err := s.files.Save(cmd.Attachment, cmd.AttachmentName)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrStoreFailed, err)
				}
				ref = r
				rec.PaymentProofPath = &ref
				return nil
			},
			compensate: func(ctx context.Context) { s.files.Delete(ref) },
		})
	}
	steps = append(steps, step{
		name: "insert record",
		run: func(ctx context.Context) error {
			persisted, err := s.records.Insert(ctx, rec)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrPersistFailed, err)
			}
			rec = persisted
			return nil
		},
	})

	if err := runSteps(ctx, steps); err != nil {
		return models.DispensingRecord{}, err
	}
	return rec, nil
}

// GetRecord — запись по идентификатору
func (s *Service) GetRecord(ctx context.Context, id int64) (models.DispensingRecord, error) {
	return s.records.GetByID(ctx, id)
}

// ListRecords — фильтрованная постраничная выборка, новые записи первыми
func (s *Service) ListRecords(ctx context.Context, q ListQuery) ([]models.DispensingRecord, int64, error) {
	if q.Page < 1 || q.PageSize < 1 {
		return nil, 0, ErrBadPage
	}
	return s.records.List(ctx, q)
}

func validate(cmd CreateRecordCommand) error {
	dispenser := strings.TrimSpace(cmd.DispenserNo)
	switch {
	case dispenser == "":
		return ErrDispenserRequired
	case len(dispenser) > 50:
		return ErrDispenserTooLong
	}
	if cmd.Volume.LessThanOrEqual(decimal.Zero) || cmd.Volume.GreaterThan(maxVolume) {
		return ErrVolumeOutOfRange
	}
	if cmd.Amount.IsNegative() {
		return ErrAmountNegative
	}
	payment := strings.TrimSpace(cmd.PaymentMode)
	switch {
	case payment == "":
		return ErrPaymentRequired
	case len(payment) > 50:
		return ErrPaymentTooLong
	}
	vehicle := strings.TrimSpace(cmd.VehicleNumber)
	switch {
	case vehicle == "":
		return ErrVehicleRequired
	case len(vehicle) > 100:
		return ErrVehicleTooLong
	}
	if len(cmd.NozzleNo) > 50 || len(cmd.FuelGrade) > 50 {
		return ErrOptionalTooLong
	}
	return nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
