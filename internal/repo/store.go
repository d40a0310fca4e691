package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fuelops/dispensing-service/internal/models"
	"github.com/fuelops/dispensing-service/internal/service"
)

// Store — адаптер Postgres, реализующий порт service.RecordRepository
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store { return &Store{pool: pool} }

var recordColumns = strings.Join([]string{
	colID, colDispenserNo, colNozzleNo, colFuelGrade, colVolume, colAmount,
	colPaymentMode, colVehicleNumber, colTransactionDate, colProofPath, colCreatedAt,
}, ", ")

func scanRecord(row pgx.Row) (models.DispensingRecord, error) {
	var r models.DispensingRecord
	err := row.Scan(&r.ID, &r.DispenserNo, &r.NozzleNo, &r.FuelGrade, &r.Volume, &r.Amount,
		&r.PaymentMode, &r.VehicleNumber, &r.TransactionDate, &r.PaymentProofPath, &r.CreatedAt)
	return r, err
}

// Insert — вставка записи; id и created_at назначает БД
func (s *Store) Insert(ctx context.Context, rec models.DispensingRecord) (models.DispensingRecord, error) {
	cmd := `INSERT INTO ` + tableRecords + ` (` +
		colDispenserNo + `, ` + colNozzleNo + `, ` + colFuelGrade + `, ` + colVolume + `, ` + colAmount + `, ` +
		colPaymentMode + `, ` + colVehicleNumber + `, ` + colTransactionDate + `, ` + colProofPath + `)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
            RETURNING ` + colID + `, ` + colCreatedAt
	err := s.pool.QueryRow(ctx, cmd,
		rec.DispenserNo, rec.NozzleNo, rec.FuelGrade, rec.Volume, rec.Amount,
		rec.PaymentMode, rec.VehicleNumber, rec.TransactionDate, rec.PaymentProofPath,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return models.DispensingRecord{}, err
	}
	return rec, nil
}

// GetByID — запись по идентификатору или service.ErrNotFound
func (s *Store) GetByID(ctx context.Context, id int64) (models.DispensingRecord, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+recordColumns+` FROM `+tableRecords+` WHERE `+colID+`=$1`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.DispensingRecord{}, service.ErrNotFound
		}
		return models.DispensingRecord{}, err
	}
	return rec, nil
}

// List — фильтрованная выборка: сначала COUNT по отфильтрованному набору,
// затем страница в порядке created_at DESC, id DESC
func (s *Store) List(ctx context.Context, q service.ListQuery) ([]models.DispensingRecord, int64, error) {
	where, args := buildWhere(q)

	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+tableRecords+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageSQL, pageArgs := buildPage(where, args, q.Page, q.PageSize)
	rows, err := s.pool.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.DispensingRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// buildWhere собирает конъюнкцию фильтров. Конец диапазона расширяется до
// последнего мгновения календарного дня: transaction_date < end+24h.
func buildWhere(q service.ListQuery) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if q.DispenserNo != "" {
		add(colDispenserNo+"=$%d", q.DispenserNo)
	}
	if q.PaymentMode != "" {
		add(colPaymentMode+"=$%d", q.PaymentMode)
	}
	if q.StartDate != nil {
		add(colTransactionDate+">=$%d", startOfDay(*q.StartDate))
	}
	if q.EndDate != nil {
		add(colTransactionDate+"<$%d", startOfDay(*q.EndDate).AddDate(0, 0, 1))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildPage(where string, args []any, page, pageSize int) (string, []any) {
	sql := `SELECT ` + recordColumns + ` FROM ` + tableRecords + where +
		` ORDER BY ` + colCreatedAt + ` DESC, ` + colID + ` DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	return sql, append(append([]any{}, args...), pageSize, (page-1)*pageSize)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
