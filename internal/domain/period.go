package domain

// Period representa um período relativo de consulta de vendas
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodLast7Days Period = "last_7_days"
	PeriodThisWeek  Period = "this_week"
	PeriodLastWeek  Period = "last_week"
	PeriodThisMonth Period = "this_month"
	PeriodLastMonth Period = "last_month"
)

// periodLabels são os rótulos de exibição fixos, em inglês, usados nas respostas
var periodLabels = map[Period]string{
	PeriodToday:     "today",
	PeriodYesterday: "yesterday",
	PeriodLast7Days: "the last 7 days",
	PeriodThisWeek:  "this week (Mon → now)",
	PeriodLastWeek:  "last week",
	PeriodThisMonth: "this month",
	PeriodLastMonth: "last month",
}

// Label retorna o rótulo de exibição do período. Tokens desconhecidos são
// exibidos como vieram, sem tradução.
func (p Period) Label() string {
	if label, ok := periodLabels[p]; ok {
		return label
	}
	return string(p)
}

// NormalizePeriod converte o campo livre do classificador em um Period.
// Período ausente é tratado como "today".
func NormalizePeriod(raw string) Period {
	if raw == "" {
		return PeriodToday
	}
	return Period(raw)
}
