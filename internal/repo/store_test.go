package repo

import (
	"strings"
	"testing"
	"time"

	"github.com/fuelops/dispensing-service/internal/service"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildWhereEmpty(t *testing.T) {
	where, args := buildWhere(service.ListQuery{})
	if where != "" || len(args) != 0 {
		t.Fatalf("no filters must produce no WHERE, got %q %v", where, args)
	}
}

func TestBuildWhereConjunction(t *testing.T) {
	where, args := buildWhere(service.ListQuery{
		DispenserNo: "D-01",
		PaymentMode: "cash",
		StartDate:   date(2025, 6, 1),
		EndDate:     date(2025, 6, 3),
	})
	want := " WHERE dispenser_no=$1 AND payment_mode=$2 AND transaction_date>=$3 AND transaction_date<$4"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
	if len(args) != 4 {
		t.Fatalf("args = %v", args)
	}
	if args[0] != "D-01" || args[1] != "cash" {
		t.Fatalf("exact-match args wrong: %v", args)
	}
}

func TestBuildWhereEndDateCoversWholeDay(t *testing.T) {
	// startDate=D, endDate=D must cover the whole calendar day D
	where, args := buildWhere(service.ListQuery{
		StartDate: date(2025, 6, 2),
		EndDate:   date(2025, 6, 2),
	})
	if !strings.Contains(where, "transaction_date>=$1") || !strings.Contains(where, "transaction_date<$2") {
		t.Fatalf("unexpected where: %q", where)
	}
	start := args[0].(time.Time)
	end := args[1].(time.Time)
	if !start.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end bound = %v, want exclusive start of next day", end)
	}
	// 23:59:59.999 of day D is inside the window
	last := time.Date(2025, 6, 2, 23, 59, 59, 999000000, time.UTC)
	if last.Before(start) || !last.Before(end) {
		t.Fatal("final instant of the day must be included")
	}
}

func TestBuildWhereEndDateNormalizesTime(t *testing.T) {
	mid := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)
	where, args := buildWhere(service.ListQuery{EndDate: &mid})
	if where != " WHERE transaction_date<$1" {
		t.Fatalf("where = %q", where)
	}
	if !args[0].(time.Time).Equal(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end bound not normalized to day boundary: %v", args[0])
	}
}

func TestBuildPage(t *testing.T) {
	where, args := buildWhere(service.ListQuery{PaymentMode: "card"})
	sql, pageArgs := buildPage(where, args, 2, 10)

	if !strings.Contains(sql, "ORDER BY created_at DESC, id DESC") {
		t.Fatalf("ordering missing: %q", sql)
	}
	if !strings.Contains(sql, "LIMIT $2 OFFSET $3") {
		t.Fatalf("pagination placeholders wrong: %q", sql)
	}
	if pageArgs[1] != 10 || pageArgs[2] != 10 {
		t.Fatalf("page=2 pageSize=10 must map to limit 10 offset 10: %v", pageArgs)
	}
}

func TestBuildPageFirstPage(t *testing.T) {
	sql, pageArgs := buildPage("", nil, 1, 25)
	if !strings.Contains(sql, "LIMIT $1 OFFSET $2") {
		t.Fatalf("placeholders: %q", sql)
	}
	if pageArgs[0] != 25 || pageArgs[1] != 0 {
		t.Fatalf("args: %v", pageArgs)
	}
}
