package vacation

import (
	"fmt"
	"strconv"
)

const ExportSheetName = "ferias"

var ExportHeaders = []string{
	"Nome do Funcionário",
	"Mês/Ano Previsto",
	"Vender 10 Dias",
	"Notificar (Dias Antes)",
	"Status",
}

var monthNamesBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func MonthNameBR(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNamesBR[month-1]
}

func sellDaysText(sellDays string) string {
	switch sellDays {
	case SellDaysFirst10:
		return "Sim (10 primeiros dias)"
	case SellDaysLast10:
		return "Sim (10 últimos dias)"
	default:
		return "Não"
	}
}

func statusText(status string) string {
	switch status {
	case StatusInProgress:
		return "Em Andamento"
	case StatusCompleted:
		return "Concluída"
	default:
		return "Pendente"
	}
}

// BuildExportRows renders vacations with the Portuguese display texts the
// table uses on screen.
func BuildExportRows(vacations []Vacation) []map[string]string {
	rows := make([]map[string]string, len(vacations))
	for i, v := range vacations {
		rows[i] = map[string]string{
			"Nome do Funcionário":    v.EmployeeName,
			"Mês/Ano Previsto":       fmt.Sprintf("%s/%d", MonthNameBR(v.PlannedMonth), v.PlannedYear),
			"Vender 10 Dias":         sellDaysText(v.SellDays),
			"Notificar (Dias Antes)": strconv.Itoa(v.NotificationDaysBefore),
			"Status":                 statusText(v.Status),
		}
	}
	return rows
}
