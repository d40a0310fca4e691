package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fuelops/dispensing-service/internal/models"
)

// memRepo — репозиторий в памяти, только для тестов
type memRepo struct {
	records  []models.DispensingRecord
	nextID   int64
	failWith error
}

func (m *memRepo) Insert(_ context.Context, rec models.DispensingRecord) (models.DispensingRecord, error) {
	if m.failWith != nil {
		return models.DispensingRecord{}, m.failWith
	}
	m.nextID++
	rec.ID = m.nextID
	rec.CreatedAt = time.Now().UTC()
	m.records = append(m.records, rec)
	return rec, nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (models.DispensingRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.DispensingRecord{}, ErrNotFound
}

func (m *memRepo) List(_ context.Context, q ListQuery) ([]models.DispensingRecord, int64, error) {
	return m.records, int64(len(m.records)), nil
}

// memFiles — хранилище вложений в памяти с учётом вызовов Delete
type memFiles struct {
	saved    map[string][]byte
	seq      int
	failSave error
}

func newMemFiles() *memFiles { return &memFiles{saved: map[string][]byte{}} }

func (m *memFiles) Save(data []byte, name string) (string, error) {
	if m.failSave != nil {
		return "", m.failSave
	}
	m.seq++
	ref := name
	if ref == "" {
		ref = "anon"
	}
	m.saved[ref] = data
	return ref, nil
}

func (m *memFiles) Delete(ref string) { delete(m.saved, ref) }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func validCommand() CreateRecordCommand {
	return CreateRecordCommand{
		DispenserNo:   "D-07",
		Volume:        decimal.NewFromFloat(35.5),
		Amount:        decimal.NewFromInt(0),
		PaymentMode:   "UPI",
		VehicleNumber: "KA-01-AB-1234",
	}
}

func newTestService(repo *memRepo, fs *memFiles) *Service {
	return New(repo, fs, fixedClock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)})
}

func TestCreateRecordWithoutAttachment(t *testing.T) {
	repo := &memRepo{}
	fs := newMemFiles()
	svc := newTestService(repo, fs)

	rec, err := svc.CreateRecord(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if rec.ID == 0 {
		t.Fatal("id must be assigned by the repository")
	}
	if rec.PaymentProofPath != nil {
		t.Fatalf("attachment reference must be nil, got %q", *rec.PaymentProofPath)
	}
	if rec.PaymentMode != "upi" {
		t.Fatalf("payment mode not normalized: %q", rec.PaymentMode)
	}
	if len(fs.saved) != 0 {
		t.Fatal("no file must be stored")
	}
}

func TestCreateRecordWithAttachment(t *testing.T) {
	repo := &memRepo{}
	fs := newMemFiles()
	svc := newTestService(repo, fs)

	cmd := validCommand()
	cmd.Attachment = []byte{0xFF, 0xD8}
	cmd.AttachmentName = "proof.jpg"

	rec, err := svc.CreateRecord(context.Background(), cmd)
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if rec.PaymentProofPath == nil || *rec.PaymentProofPath != "proof.jpg" {
		t.Fatalf("attachment reference missing: %v", rec.PaymentProofPath)
	}
	if len(fs.saved) != 1 {
		t.Fatalf("expected one stored file, got %d", len(fs.saved))
	}
}

func TestCreateRecordCompensatesOnInsertFailure(t *testing.T) {
	repo := &memRepo{failWith: errors.New("db down")}
	fs := newMemFiles()
	svc := newTestService(repo, fs)

	cmd := validCommand()
	cmd.Attachment = []byte("img")
	cmd.AttachmentName = "proof.png"

	_, err := svc.CreateRecord(context.Background(), cmd)
	if !errors.Is(err, ErrPersistFailed) {
		t.Fatalf("expected ErrPersistFailed, got %v", err)
	}
	if len(fs.saved) != 0 {
		t.Fatalf("orphaned files after compensation: %v", fs.saved)
	}
}

func TestCreateRecordStoreFailureShortCircuits(t *testing.T) {
	repo := &memRepo{}
	fs := newMemFiles()
	fs.failSave = errors.New("disk full")
	svc := newTestService(repo, fs)

	cmd := validCommand()
	cmd.Attachment = []byte("img")

	_, err := svc.CreateRecord(context.Background(), cmd)
	if !errors.Is(err, ErrStoreFailed) {
		t.Fatalf("expected ErrStoreFailed, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatal("repository must not be touched after store failure")
	}
}

func TestCreateRecordValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateRecordCommand)
		want   error
	}{
		{"missing dispenser", func(c *CreateRecordCommand) { c.DispenserNo = "  " }, ErrDispenserRequired},
		{"long dispenser", func(c *CreateRecordCommand) { c.DispenserNo = repeat(51) }, ErrDispenserTooLong},
		{"zero volume", func(c *CreateRecordCommand) { c.Volume = decimal.Zero }, ErrVolumeOutOfRange},
		{"negative volume", func(c *CreateRecordCommand) { c.Volume = decimal.NewFromInt(-1) }, ErrVolumeOutOfRange},
		{"huge volume", func(c *CreateRecordCommand) { c.Volume = decimal.NewFromInt(10001) }, ErrVolumeOutOfRange},
		{"negative amount", func(c *CreateRecordCommand) { c.Amount = decimal.NewFromInt(-5) }, ErrAmountNegative},
		{"missing payment", func(c *CreateRecordCommand) { c.PaymentMode = "" }, ErrPaymentRequired},
		{"long payment", func(c *CreateRecordCommand) { c.PaymentMode = repeat(51) }, ErrPaymentTooLong},
		{"missing vehicle", func(c *CreateRecordCommand) { c.VehicleNumber = "" }, ErrVehicleRequired},
		{"long vehicle", func(c *CreateRecordCommand) { c.VehicleNumber = repeat(101) }, ErrVehicleTooLong},
		{"long nozzle", func(c *CreateRecordCommand) { c.NozzleNo = repeat(51) }, ErrOptionalTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memRepo{}
			fs := newMemFiles()
			svc := newTestService(repo, fs)

			cmd := validCommand()
			cmd.Attachment = []byte("img")
			tc.mutate(&cmd)

			_, err := svc.CreateRecord(context.Background(), cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			// validation must reject before any side effect
			if len(fs.saved) != 0 || len(repo.records) != 0 {
				t.Fatal("side effects after validation failure")
			}
		})
	}
}

func TestListRecordsBadPage(t *testing.T) {
	svc := newTestService(&memRepo{}, newMemFiles())

	for _, q := range []ListQuery{{Page: 0, PageSize: 10}, {Page: 1, PageSize: 0}} {
		if _, _, err := svc.ListRecords(context.Background(), q); !errors.Is(err, ErrBadPage) {
			t.Fatalf("expected ErrBadPage for %+v, got %v", q, err)
		}
	}
}

func TestMaxVolumeBoundaryAllowed(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo, newMemFiles())

	cmd := validCommand()
	cmd.Volume = decimal.NewFromInt(10000)
	if _, err := svc.CreateRecord(context.Background(), cmd); err != nil {
		t.Fatalf("volume of exactly 10000 must pass: %v", err)
	}
}

func repeat(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
