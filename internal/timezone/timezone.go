package timezone

import (
	"time"
	// embute a base de fusos para não depender do sistema
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock permite fixar o "agora" nos testes.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

func (c Clock) In(tz string) time.Time {
	return c.Now().In(Location(tz))
}

// DayBounds devolve [00:00, 00:00 do dia seguinte) no fuso de t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// MonthBounds devolve [dia 1, dia 1 do mês seguinte) no fuso de t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// ParseMonth aceita YYYY-MM no fuso da loja.
func ParseMonth(month, tz string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01", month, Location(tz))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
