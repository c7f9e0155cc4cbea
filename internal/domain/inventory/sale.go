package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

// CheckQuantity é a pré-condição da venda contra o estoque lido.
// A garantia real fica no UPDATE condicional do repositório.
func CheckQuantity(p *models.Product, quantity int) error {
	if quantity < 1 || quantity > p.Stock {
		return httperr.ErrInsufficientStock
	}
	return nil
}

// NewSale congela custo e preço do produto multiplicados pela quantidade.
func NewSale(p *models.Product, quantity int, a actor.Actor, now time.Time) *models.SaleRecord {
	q := decimal.NewFromInt(int64(quantity))

	cost := p.Cost.Mul(q)
	price := p.Price.Mul(q)

	return &models.SaleRecord{
		ShopID:      p.ShopID,
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		Cost:        cost,
		Price:       price,
		Profit:      price.Sub(cost),
		SoldBy:      a.UserID,
		SoldByName:  a.Name,
		CreatedAt:   now,
	}
}
