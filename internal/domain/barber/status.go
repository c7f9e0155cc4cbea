package barber

import (
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/lifecycle"
)

// ===============================
// Barber Account Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusRejected Status = "rejected"
)

const (
	EventApprove    = "approve"
	EventReject     = "reject"
	EventDeactivate = "deactivate"
	EventActivate   = "activate"
)

// Machine é a única fonte das transições da conta do barbeiro.
// rejected é terminal: não existe caminho de reintegração.
var Machine = lifecycle.New("barber", map[string]lifecycle.Transition[Status]{
	EventApprove:    {From: []Status{StatusPending}, To: StatusActive},
	EventReject:     {From: []Status{StatusPending}, To: StatusRejected},
	EventDeactivate: {From: []Status{StatusActive}, To: StatusInactive},
	EventActivate:   {From: []Status{StatusInactive}, To: StatusActive},
})

// ToggleEvent escolhe o evento de toggleActive conforme o estado atual.
// Estados fora de active/inactive caem em activate e são recusados pela máquina.
func ToggleEvent(current Status) string {
	if current == StatusActive {
		return EventDeactivate
	}
	return EventActivate
}

// InitialStatus: admin nasce ativo, barbeiro criado por cadastro nasce pendente.
func InitialStatus(role actor.Role, createdByAdmin bool) Status {
	if role == actor.RoleAdmin || createdByAdmin {
		return StatusActive
	}
	return StatusPending
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive, StatusRejected:
		return true
	}
	return false
}
