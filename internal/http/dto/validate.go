package dto

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrBadVolume           = errors.New("invalid volume value")
	ErrBadAmount           = errors.New("invalid amount value")
	ErrBadStartDate        = errors.New("invalid startDate, expected YYYY-MM-DD")
	ErrBadEndDate          = errors.New("invalid endDate, expected YYYY-MM-DD")
	ErrBadPage             = errors.New("page must be a positive integer")
	ErrBadPageSize         = errors.New("pageSize must be a positive integer")
	ErrBadRecordID         = errors.New("invalid record id")
)

const dateLayout = "2006-01-02"

// Validate проверяет инварианты LoginRequest
func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" || r.Password == "" {
		return ErrCredentialsRequired
	}
	return nil
}

// ParseDate разбирает фильтр-дату формата YYYY-MM-DD
func ParseDate(raw string, badErr error) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, badErr
	}
	return &t, nil
}

// ParsePositiveInt разбирает page/pageSize; пустая строка даёт дефолт
func ParsePositiveInt(raw string, def int, badErr error) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, badErr
	}
	return n, nil
}

// ParseRecordID разбирает path-параметр id
func ParseRecordID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrBadRecordID
	}
	return id, nil
}
