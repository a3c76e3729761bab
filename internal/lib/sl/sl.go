// Package sl дополняет log/slog атрибутами, общими для всего портала.
package sl

import "log/slog"

// Err оборачивает ошибку в slog.Attr с ключом "error", чтобы записи
// об ошибках выглядели одинаково во всех сервисах и обработчиках.
//
//	log.Error("failed to create user", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
