package migrations

import "embed"

// Files — SQL-миграции, применяются по алфавиту имён
//
//go:embed *.sql
var Files embed.FS
