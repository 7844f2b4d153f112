package period

import (
	"time"

	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

// Uma data civil é representada como time.Time à meia-noite UTC, sem
// componente de hora significativo. Comparações entre datas civis usam
// Before/After/Equal diretamente.

// DateOf normaliza um instante para a data civil correspondente no fuso de t
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayIn retorna a data civil atual no fuso informado
func TodayIn(loc *time.Location) time.Time {
	return DateOf(time.Now().In(loc))
}

// ParseDate interpreta os 10 primeiros caracteres de uma data no formato
// ISO (yyyy-mm-dd) como data civil
func ParseDate(raw string) (time.Time, error) {
	if len(raw) > 10 {
		raw = raw[:10]
	}
	return time.Parse(time.DateOnly, raw)
}

// ResolveCivil converte um token de período em um intervalo fechado de datas
// civis [start, end], ambos inclusivos, dado o dia civil atual. As datas do
// POS são datas locais de Berlim; converter para instantes UTC antes de
// comparar classificaria errado registros perto da meia-noite. Tokens
// desconhecidos caem na janela de hoje.
func ResolveCivil(p domain.Period, today time.Time) (time.Time, time.Time) {
	today = DateOf(today)

	switch p {
	case domain.PeriodToday:
		return today, today

	case domain.PeriodYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return yesterday, yesterday

	case domain.PeriodLast7Days:
		return today.AddDate(0, 0, -7), today

	case domain.PeriodThisWeek:
		return mondayOf(today), today

	case domain.PeriodLastWeek:
		thisMonday := mondayOf(today)
		return thisMonday.AddDate(0, 0, -7), thisMonday.AddDate(0, 0, -1)

	case domain.PeriodThisMonth:
		return firstOfMonth(today), today

	case domain.PeriodLastMonth:
		lastMonthEnd := firstOfMonth(today).AddDate(0, 0, -1)
		return firstOfMonth(lastMonthEnd), lastMonthEnd
	}

	return today, today
}
