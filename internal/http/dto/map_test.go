package dto

import (
	"errors"
	"testing"
	"time"
)

func TestToListQueryDefaults(t *testing.T) {
	q, err := ToListQuery("", "", "", "", "", "")
	if err != nil {
		t.Fatalf("ToListQuery: %v", err)
	}
	if q.Page != 1 || q.PageSize != 10 {
		t.Fatalf("defaults wrong: page=%d pageSize=%d", q.Page, q.PageSize)
	}
	if q.StartDate != nil || q.EndDate != nil {
		t.Fatal("empty dates must stay nil")
	}
}

func TestToListQueryFull(t *testing.T) {
	q, err := ToListQuery("D-01", "Cash", "2025-06-01", "2025-06-03", "2", "25")
	if err != nil {
		t.Fatalf("ToListQuery: %v", err)
	}
	if q.DispenserNo != "D-01" || q.PaymentMode != "cash" {
		t.Fatalf("filters wrong: %+v", q)
	}
	if !q.StartDate.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("startDate: %v", q.StartDate)
	}
	if q.Page != 2 || q.PageSize != 25 {
		t.Fatalf("pagination: %+v", q)
	}
}

func TestToListQueryErrors(t *testing.T) {
	cases := []struct {
		name                                        string
		dispenser, mode, start, end, page, pageSize string
		want                                        error
	}{
		{"bad start", "", "", "06/01/2025", "", "", "", ErrBadStartDate},
		{"bad end", "", "", "", "not-a-date", "", "", ErrBadEndDate},
		{"zero page", "", "", "", "", "0", "", ErrBadPage},
		{"negative page", "", "", "", "", "-1", "", ErrBadPage},
		{"garbage page", "", "", "", "", "x", "", ErrBadPage},
		{"zero pageSize", "", "", "", "", "", "0", ErrBadPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToListQuery(tc.dispenser, tc.mode, tc.start, tc.end, tc.page, tc.pageSize)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestToListQueryCapsPageSize(t *testing.T) {
	q, err := ToListQuery("", "", "", "", "", "1000")
	if err != nil {
		t.Fatalf("ToListQuery: %v", err)
	}
	if q.PageSize != 100 {
		t.Fatalf("pageSize not capped: %d", q.PageSize)
	}
}

func TestCreateRecordFormToCommand(t *testing.T) {
	f := CreateRecordForm{
		DispenserNo:   "D-01",
		Volume:        "35.5",
		Amount:        "3200.75",
		PaymentMode:   "cash",
		VehicleNumber: "KA-01-AB-1234",
	}
	cmd, err := f.ToCommand()
	if err != nil {
		t.Fatalf("ToCommand: %v", err)
	}
	if cmd.Volume.String() != "35.5" || cmd.Amount.String() != "3200.75" {
		t.Fatalf("decimals wrong: %s %s", cmd.Volume, cmd.Amount)
	}
}

func TestCreateRecordFormBadNumbers(t *testing.T) {
	f := CreateRecordForm{Volume: "abc"}
	if _, err := f.ToCommand(); !errors.Is(err, ErrBadVolume) {
		t.Fatalf("got %v, want ErrBadVolume", err)
	}
	f = CreateRecordForm{Volume: "1", Amount: "xyz"}
	if _, err := f.ToCommand(); !errors.Is(err, ErrBadAmount) {
		t.Fatalf("got %v, want ErrBadAmount", err)
	}
}

func TestCreateRecordFormEmptyAmountDefaultsZero(t *testing.T) {
	f := CreateRecordForm{Volume: "10"}
	cmd, err := f.ToCommand()
	if err != nil {
		t.Fatalf("ToCommand: %v", err)
	}
	if !cmd.Amount.IsZero() {
		t.Fatalf("amount must default to zero, got %s", cmd.Amount)
	}
}

func TestParseRecordID(t *testing.T) {
	if _, err := ParseRecordID("abc"); !errors.Is(err, ErrBadRecordID) {
		t.Fatalf("got %v", err)
	}
	if _, err := ParseRecordID("0"); !errors.Is(err, ErrBadRecordID) {
		t.Fatalf("got %v", err)
	}
	id, err := ParseRecordID("42")
	if err != nil || id != 42 {
		t.Fatalf("ParseRecordID(42) = %d, %v", id, err)
	}
}
