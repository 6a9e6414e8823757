// Package migrations содержит SQL-миграции журнала обоев, встроенные в бинарник
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
