package haircut

import (
	"context"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/haircut"
	"github.com/BruksfildServices01/barbershop-manager/internal/metrics"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// Review aprova ou rejeita um registro de corte pendente; as duas saídas são finais.
type Review struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Ledger
	clock   timezone.Clock
}

func NewReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Ledger,
	clock timezone.Clock,
) *Review {
	return &Review{repo: repo, audit: audit, metrics: metrics, clock: clock}
}

func (uc *Review) Approve(ctx context.Context, a actor.Actor, id string) (*models.HaircutRecord, error) {
	return uc.apply(ctx, a, id, domain.EventApprove)
}

func (uc *Review) Reject(ctx context.Context, a actor.Actor, id string) (*models.HaircutRecord, error) {
	return uc.apply(ctx, a, id, domain.EventReject)
}

func (uc *Review) apply(
	ctx context.Context,
	a actor.Actor,
	id string,
	event string,
) (*models.HaircutRecord, error) {

	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	rec, err := uc.repo.Get(ctx, a.ShopID, id)
	if err != nil {
		return nil, err
	}

	from := domain.PairOf(rec)
	to, err := domain.Transition(event, from)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.ChangeApproval(ctx, domain.ApprovalChange{
		ShopID:       a.ShopID,
		ID:           rec.ID,
		From:         from,
		To:           to,
		ApproverID:   a.UserID,
		ApproverName: a.Name,
		At:           uc.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.Transition("haircut", string(to.Approval))
	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "haircut_" + event,
		Entity:   "haircut",
		EntityID: rec.ID,
		Metadata: map[string]string{"from": from.String(), "to": to.String()},
	})

	return updated, nil
}
