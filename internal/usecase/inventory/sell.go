package inventory

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/metrics"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// SellProduct baixa o estoque e registra a venda numa única transação.
type SellProduct struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Ledger
	clock   timezone.Clock
}

func NewSellProduct(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Ledger,
	clock timezone.Clock,
) *SellProduct {
	return &SellProduct{repo: repo, audit: audit, metrics: metrics, clock: clock}
}

func (uc *SellProduct) Execute(
	ctx context.Context,
	a actor.Actor,
	productID string,
	quantity int,
) (*models.SaleRecord, error) {

	sale, err := uc.repo.Sell(ctx, a.ShopID, productID, quantity, a, uc.clock.Now())
	switch {
	case err == nil:
		uc.metrics.Sale(metrics.OutcomeOK, a.ShopID, quantity)
	case httperr.IsDomain(err):
		uc.metrics.Sale(metrics.OutcomeRejected, a.ShopID, 0)
		return nil, err
	default:
		uc.metrics.Sale(metrics.OutcomeError, a.ShopID, 0)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "product_sold",
		Entity:   "sale",
		EntityID: sale.ID,
		Metadata: map[string]any{"product_id": productID, "quantity": quantity},
	})

	return sale, nil
}

// ===============================
// SalesStats
// ===============================

type SalesStats struct {
	repo  domain.Repository
	shops barber.Repository
	clock timezone.Clock
}

func NewSalesStats(repo domain.Repository, shops barber.Repository, clock timezone.Clock) *SalesStats {
	return &SalesStats{repo: repo, shops: shops, clock: clock}
}

// Execute calcula hoje e mês no fuso da loja.
func (uc *SalesStats) Execute(ctx context.Context, a actor.Actor) (*domain.Summary, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	shop, err := uc.shops.GetBarbershop(ctx, a.ShopID)
	if err != nil {
		return nil, err
	}

	sales, err := uc.repo.ListSales(ctx, a.ShopID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	now := uc.clock.In(shop.Timezone)
	dayStart, dayEnd := timezone.DayBounds(now)
	monthStart, monthEnd := timezone.MonthBounds(now)

	summary := domain.Summarize(sales, dayStart, dayEnd, monthStart, monthEnd)
	return &summary, nil
}

type ListSales struct {
	repo domain.Repository
}

func NewListSales(repo domain.Repository) *ListSales {
	return &ListSales{repo: repo}
}

func (uc *ListSales) Execute(ctx context.Context, a actor.Actor, from, to time.Time) ([]models.SaleRecord, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}
	return uc.repo.ListSales(ctx, a.ShopID, from, to)
}
