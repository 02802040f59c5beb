package utils

import (
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate interpreta datas no formato ISO usado pelos parâmetros da API
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseCalendarDate interpreta de forma permissiva a coluna de data de uma
// fonte, cujo formato é livre. O resultado é truncado para data de calendário
// em UTC, sem componente de hora. Retorna nil para valores não interpretáveis
func ParseCalendarDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil
	}

	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return &date
}
