// Package period traduz tokens de período em limites concretos de tempo.
//
// Existem duas disciplinas distintas que não podem ser misturadas: a
// disciplina de instantes UTC (Resolve), usada pelo canal online cujos
// pedidos carregam timestamps, e a disciplina de datas civis (ResolveCivil),
// usada pelo POS cujos documentos carregam datas locais de Berlim.
package period

import (
	"time"

	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

// Resolve converte um token de período em um intervalo fechado de instantes
// UTC [start, end], dado o instante atual. Tokens desconhecidos caem no
// intervalo de hoje.
func Resolve(p domain.Period, now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch p {
	case domain.PeriodToday:
		return todayStart, now

	case domain.PeriodYesterday:
		return todayStart.AddDate(0, 0, -1), todayStart.Add(-time.Second)

	case domain.PeriodLast7Days:
		return now.AddDate(0, 0, -7), now

	case domain.PeriodThisWeek:
		return mondayOf(todayStart), now

	case domain.PeriodLastWeek:
		thisMonday := mondayOf(todayStart)
		return thisMonday.AddDate(0, 0, -7), thisMonday.Add(-time.Second)

	case domain.PeriodThisMonth:
		return firstOfMonth(todayStart), now

	case domain.PeriodLastMonth:
		lastMonthEnd := firstOfMonth(todayStart).Add(-time.Second)
		return firstOfMonth(lastMonthEnd), lastMonthEnd
	}

	return todayStart, now
}

// mondayOf retorna a segunda-feira 00:00 da semana ISO de t
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// firstOfMonth retorna o primeiro dia do mês de t, à meia-noite
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
