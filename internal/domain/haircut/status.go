package haircut

import (
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

// ===============================
// Haircut Record Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalRejected Approval = "rejected"
)

const (
	EventApprove = "approve"
	EventReject  = "reject"
)

// Machine roda sobre approvalStatus; status é derivado (ver StatusFor).
var Machine = lifecycle.New("haircut", map[string]lifecycle.Transition[Approval]{
	EventApprove: {From: []Approval{ApprovalPending}, To: ApprovalApproved},
	EventReject:  {From: []Approval{ApprovalPending}, To: ApprovalRejected},
})

// StatusFor mantém status e approvalStatus andando juntos.
func StatusFor(a Approval) Status {
	switch a {
	case ApprovalApproved:
		return StatusCompleted
	case ApprovalRejected:
		return StatusRejected
	}
	return StatusPending
}

// Pair é o par (status, approvalStatus) gravado no registro.
type Pair struct {
	Status   Status
	Approval Approval
}

func PairOf(rec *models.HaircutRecord) Pair {
	return Pair{Status: Status(rec.Status), Approval: Approval(rec.ApprovalStatus)}
}

func (p Pair) String() string {
	return string(p.Status) + "/" + string(p.Approval)
}

// Transition valida o evento a partir do par atual.
// Um par incoerente (ex.: completed/pending) nunca é origem válida.
func Transition(event string, from Pair) (Pair, error) {
	invalid := &httperr.InvalidTransition{
		Entity: Machine.Entity(),
		From:   from.String(),
		To:     targetOf(event),
	}

	if from.Status != StatusFor(from.Approval) {
		return from, invalid
	}

	to, err := Machine.Apply(event, from.Approval)
	if err != nil {
		return from, invalid
	}

	return Pair{Status: StatusFor(to), Approval: to}, nil
}

func targetOf(event string) string {
	to, err := Machine.Apply(event, ApprovalPending)
	if err != nil {
		return event
	}
	return Pair{Status: StatusFor(to), Approval: to}.String()
}

// InitialPair: registro do barbeiro aguarda aprovação; o admin lança direto como concluído.
func InitialPair(byAdmin bool) Pair {
	if byAdmin {
		return Pair{Status: StatusCompleted, Approval: ApprovalApproved}
	}
	return Pair{Status: StatusPending, Approval: ApprovalPending}
}

func (p Pair) IsTerminal() bool {
	return Machine.IsTerminal(p.Approval)
}
