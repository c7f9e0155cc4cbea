package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// ===============================
// ListProducts
// ===============================

type ListProducts struct {
	repo domain.Repository
}

func NewListProducts(repo domain.Repository) *ListProducts {
	return &ListProducts{repo: repo}
}

// Execute com lowOnly devolve só os itens em alerta (stock <= minStock).
func (uc *ListProducts) Execute(ctx context.Context, a actor.Actor, lowOnly bool) ([]models.Product, error) {
	list, err := uc.repo.ListProducts(ctx, a.ShopID)
	if err != nil {
		return nil, err
	}
	if lowOnly {
		return domain.LowStock(list), nil
	}
	return list, nil
}

type FindByBarcode struct {
	repo domain.Repository
}

func NewFindByBarcode(repo domain.Repository) *FindByBarcode {
	return &FindByBarcode{repo: repo}
}

func (uc *FindByBarcode) Execute(ctx context.Context, a actor.Actor, barcode string) (*models.Product, error) {
	if barcode == "" {
		return nil, httperr.ErrBusiness("barcode_required")
	}
	return uc.repo.GetByBarcode(ctx, a.ShopID, barcode)
}

// ===============================
// SaveProduct / DeleteProduct
// ===============================

// ProductInput.Stock só vale na criação; depois o estoque muda por venda ou AdjustStock.
type ProductInput struct {
	Name        string
	Category    string
	Description string
	Cost        decimal.Decimal
	Price       decimal.Decimal
	Stock       int
	MinStock    int
	Barcode     string
}

type SaveProduct struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewSaveProduct(repo domain.Repository, audit *audit.Dispatcher, clock timezone.Clock) *SaveProduct {
	return &SaveProduct{repo: repo, audit: audit, clock: clock}
}

// Execute cria quando id é vazio; senão atualiza o produto da loja.
func (uc *SaveProduct) Execute(
	ctx context.Context,
	a actor.Actor,
	id string,
	in ProductInput,
) (*models.Product, error) {

	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	p := &models.Product{ShopID: a.ShopID, CreatedAt: now}
	if id != "" {
		current, err := uc.repo.GetProduct(ctx, a.ShopID, id)
		if err != nil {
			return nil, err
		}
		p = current
	}

	p.Name = in.Name
	p.Category = in.Category
	p.Description = in.Description
	p.Cost = in.Cost
	p.Price = in.Price
	if id == "" {
		p.Stock = in.Stock
	}
	p.MinStock = in.MinStock
	p.Barcode = in.Barcode
	p.UpdatedBy = a.UserID
	p.UpdatedAt = now

	if err := domain.ValidateProduct(p); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}

	action := "product_updated"
	if id == "" {
		action = "product_created"
	}
	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   action,
		Entity:   "product",
		EntityID: p.ID,
	})

	return p, nil
}

// ===============================
// AdjustStock
// ===============================

// AdjustStock é a reposição ou correção manual de estoque, sempre por delta.
type AdjustStock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewAdjustStock(repo domain.Repository, audit *audit.Dispatcher, clock timezone.Clock) *AdjustStock {
	return &AdjustStock{repo: repo, audit: audit, clock: clock}
}

func (uc *AdjustStock) Execute(ctx context.Context, a actor.Actor, id string, delta int) (*models.Product, error) {
	if err := a.RequireAdmin(); err != nil {
		return nil, err
	}
	if delta == 0 {
		return nil, httperr.ErrBusiness("invalid_delta")
	}

	p, err := uc.repo.AdjustStock(ctx, a.ShopID, id, delta, a.UserID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "stock_adjusted",
		Entity:   "product",
		EntityID: p.ID,
		Metadata: map[string]any{"delta": delta, "stock": p.Stock},
	})
	return p, nil
}

type DeleteProduct struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteProduct(repo domain.Repository, audit *audit.Dispatcher) *DeleteProduct {
	return &DeleteProduct{repo: repo, audit: audit}
}

func (uc *DeleteProduct) Execute(ctx context.Context, a actor.Actor, id string) error {
	if err := a.RequireAdmin(); err != nil {
		return err
	}
	if err := uc.repo.DeleteProduct(ctx, a.ShopID, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: id,
	})
	return nil
}
