package haircut

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

type RecordInput struct {
	ClientName    string
	PaymentMethod PaymentMethod
	Notes         string
}

// NewRecord monta o registro com o preço do serviço congelado no momento da criação.
// Quando o ator é admin o registro já nasce concluído e aprovado por ele.
func NewRecord(
	a actor.Actor,
	barber *models.User,
	svc *models.Service,
	in RecordInput,
	now time.Time,
) (*models.HaircutRecord, error) {

	if barber.ShopID != a.ShopID || svc.ShopID != a.ShopID {
		return nil, httperr.ErrNotFound("not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}
	if !in.PaymentMethod.Valid() {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	pair := InitialPair(a.IsAdmin())

	rec := &models.HaircutRecord{
		ShopID:        a.ShopID,
		BarberID:      barber.ID,
		BarberName:    barber.Name,
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		Price:         svc.Price,
		ClientName:    strings.TrimSpace(in.ClientName),
		PaymentMethod: string(in.PaymentMethod),
		Notes:         strings.TrimSpace(in.Notes),

		Status:         string(pair.Status),
		ApprovalStatus: string(pair.Approval),

		UpdatedBy: a.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if a.IsAdmin() {
		rec.ApprovedAt = &now
		rec.ApprovedBy = a.UserID
		rec.ApprovedByName = a.Name
	}

	return rec, nil
}
