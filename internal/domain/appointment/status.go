package appointment

import "github.com/BruksfildServices01/barbershop-manager/internal/domain/lifecycle"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

const (
	EventConfirm  = "confirm"
	EventComplete = "complete"
	EventCancel   = "cancel"
)

// Machine: pending -> confirmed -> completed, pending|confirmed -> cancelled.
var Machine = lifecycle.New("appointment", map[string]lifecycle.Transition[Status]{
	EventConfirm:  {From: []Status{StatusPending}, To: StatusConfirmed},
	EventComplete: {From: []Status{StatusConfirmed}, To: StatusCompleted},
	EventCancel:   {From: []Status{StatusPending, StatusConfirmed}, To: StatusCancelled},
})

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusPending
}

// HoldsSlot diz se o agendamento ocupa o horário na grade.
func (s Status) HoldsSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// SlotHolding lista os status que ocupam horário (índice único parcial).
func SlotHolding() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
