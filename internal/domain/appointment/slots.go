package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/config"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

const (
	DateLayout = "2006-01-02"
	SlotLayout = "15:04"
)

// Grid é a grade diária de horários de largura fixa.
type Grid struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
}

func GridFromConfig(cfg config.ScheduleConfig) Grid {
	return Grid{
		OpenHour:    cfg.OpenHour,
		CloseHour:   cfg.CloseHour,
		SlotMinutes: cfg.SlotMinutes,
	}
}

// Slots gera os inícios de slot de OpenHour até o último que termina antes de CloseHour.
func (g Grid) Slots() []string {
	if g.SlotMinutes <= 0 || g.CloseHour <= g.OpenHour {
		return nil
	}

	open := g.OpenHour * 60
	closeAt := g.CloseHour * 60

	slots := make([]string, 0, (closeAt-open)/g.SlotMinutes)
	for m := open; m+g.SlotMinutes <= closeAt; m += g.SlotMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

func (g Grid) Contains(slot string) bool {
	for _, s := range g.Slots() {
		if s == slot {
			return true
		}
	}
	return false
}

// TimeSlot é um slot com início e fim, como exposto na agenda.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (g Grid) TimeSlots(slots []string) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		t, err := time.Parse(SlotLayout, s)
		if err != nil {
			continue
		}
		out = append(out, TimeSlot{
			Start: s,
			End:   t.Add(time.Duration(g.SlotMinutes) * time.Minute).Format(SlotLayout),
		})
	}
	return out
}

// AvailableSlots devolve a grade menos os horários ocupados por agendamentos
// pending/confirmed do barbeiro na data. Não consulta relógio.
func (g Grid) AvailableSlots(barberID, date string, existing []models.Appointment) []string {
	taken := make(map[string]struct{})
	for _, ap := range existing {
		if ap.BarberID != barberID || ap.Date != date {
			continue
		}
		if !Status(ap.Status).HoldsSlot() {
			continue
		}
		taken[ap.Time] = struct{}{}
	}

	free := make([]string, 0)
	for _, s := range g.Slots() {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}

// ParseDate aceita apenas YYYY-MM-DD.
func ParseDate(date string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil || t.Format(DateLayout) != date {
		return time.Time{}, false
	}
	return t, true
}
