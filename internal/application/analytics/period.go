package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// Nombres de período aceptados por los reportes.
const (
	PeriodToday = "hoy"
	PeriodWeek  = "semana"
	PeriodMonth = "mes"
)

const dateLayout = "2006-01-02"

// Window rango [Start, End] inclusivo en ambos extremos.
type Window struct {
	Start time.Time
	End   time.Time
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay último instante del día de t.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// TodayWindow hoy 00:00:00 – 23:59:59.999999999.
func TodayWindow(now time.Time) Window {
	return Window{Start: startOfDay(now), End: endOfDay(now)}
}

// WeekWindow semana en curso desde el lunes hasta el fin de hoy.
func WeekWindow(now time.Time) Window {
	offset := (int(now.Weekday()) + 6) % 7 // lunes = 0
	return Window{Start: startOfDay(now).AddDate(0, 0, -offset), End: endOfDay(now)}
}

// MonthWindow mes en curso: día 1 a las 00:00 hasta el fin de hoy.
func MonthWindow(now time.Time) Window {
	return Window{Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), End: endOfDay(now)}
}

// LastDaysWindow últimos n días incluyendo hoy.
func LastDaysWindow(now time.Time, n int) Window {
	if n < 1 {
		n = 1
	}
	return Window{Start: startOfDay(now).AddDate(0, 0, -(n - 1)), End: endOfDay(now)}
}

// WindowFor traduce el nombre del período; vacío equivale a mes.
func WindowFor(period string, now time.Time) (string, Window, error) {
	switch period {
	case PeriodToday:
		return period, TodayWindow(now), nil
	case PeriodWeek:
		return period, WeekWindow(now), nil
	case PeriodMonth, "":
		return PeriodMonth, MonthWindow(now), nil
	}
	return "", Window{}, domain.NewValidationError("periodo", "use hoy, semana o mes")
}

// Days devuelve el inicio de cada día del rango.
func (w Window) Days() []time.Time {
	var out []time.Time
	for d := startOfDay(w.Start); !d.After(w.End); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}

// dayLabel abreviatura del día de la semana, ej: "Lun".
func dayLabel(t time.Time) string {
	days := [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}
	return days[t.Weekday()]
}
