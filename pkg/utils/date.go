package utils

import "time"

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

// Yesterday retorna a data de ontem (meia-noite UTC) relativa a now.
// O dia corrente nunca entra nos períodos: o provedor pode retornar
// dados parciais para o dia que ainda não terminou.
func Yesterday(now time.Time) time.Time {
	y := now.UTC().AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths avança a data em months meses de calendário, limitando o dia
// ao último dia do mês de destino (ex.: 31/01 + 1 mês = 28/02).
func AddMonths(base time.Time, months int) time.Time {
	month := int(base.Month()) - 1 + months
	year := base.Year() + month/12
	month = month%12 + 1

	day := base.Day()
	if last := DaysInMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, base.Location())
}

// DaysInMonth retorna o número de dias do mês informado.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
