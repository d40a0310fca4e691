package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fuelops/dispensing-service/internal/models"
)

// Clock — абстракция времени для тестируемости
type Clock interface {
	Now() time.Time
}

// RecordRepository — порт реляционного хранилища записей; единственный
// писатель строк
type RecordRepository interface {
	Insert(ctx context.Context, rec models.DispensingRecord) (models.DispensingRecord, error)
	GetByID(ctx context.Context, id int64) (models.DispensingRecord, error)
	List(ctx context.Context, q ListQuery) ([]models.DispensingRecord, int64, error)
}

// AttachmentStore — порт файлового хранилища платёжных подтверждений
type AttachmentStore interface {
	Save(data []byte, originalName string) (ref string, err error)
	Delete(ref string)
}

// CreateRecordCommand — входные данные кейса создания записи
type CreateRecordCommand struct {
	DispenserNo   string
	NozzleNo      string
	FuelGrade     string
	Volume        decimal.Decimal
	Amount        decimal.Decimal
	PaymentMode   string
	VehicleNumber string

	// необязательное платёжное подтверждение
	Attachment     []byte
	AttachmentName string
}

// ListQuery — фильтры и страница выборки; фильтры объединяются по И
type ListQuery struct {
	DispenserNo string
	PaymentMode string
	StartDate   *time.Time
	EndDate     *time.Time
	Page        int
	PageSize    int
}
