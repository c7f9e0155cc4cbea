package inventory

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type Repository interface {
	// -------- Products --------
	ListProducts(ctx context.Context, shopID string) ([]models.Product, error)
	GetProduct(ctx context.Context, shopID, id string) (*models.Product, error)
	GetByBarcode(ctx context.Context, shopID, barcode string) (*models.Product, error)
	// SaveProduct cria quando ID é vazio; barcode duplicado na loja vira ConflictError.
	// Na edição o estoque não é gravado.
	SaveProduct(ctx context.Context, p *models.Product) error
	// AdjustStock aplica delta condicionalmente (stock + delta >= 0).
	AdjustStock(ctx context.Context, shopID, id string, delta int, actorID string, now time.Time) (*models.Product, error)
	SetImageURL(ctx context.Context, shopID, id, url, actorID string) error
	DeleteProduct(ctx context.Context, shopID, id string) error

	// -------- Ledger --------
	// Sell baixa o estoque e grava a venda na mesma transação.
	Sell(ctx context.Context, shopID, productID string, quantity int, a actor.Actor, now time.Time) (*models.SaleRecord, error)
	ListSales(ctx context.Context, shopID string, from, to time.Time) ([]models.SaleRecord, error)
}
