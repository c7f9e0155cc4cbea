package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

var hundred = decimal.NewFromInt(100)

// ValidateProduct aplica as regras de escrita do produto e normaliza os campos de texto.
func ValidateProduct(p *models.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Barcode = strings.TrimSpace(p.Barcode)

	switch {
	case p.Name == "":
		return httperr.ErrBusiness("name_required")
	case p.Cost.IsNegative():
		return httperr.ErrBusiness("invalid_cost")
	case !p.Price.GreaterThan(p.Cost):
		return httperr.ErrBusiness("price_must_exceed_cost")
	case p.Stock < 0:
		return httperr.ErrBusiness("invalid_stock")
	case p.MinStock < 0:
		return httperr.ErrBusiness("invalid_min_stock")
	}

	p.ProfitMargin = ProfitMargin(p.Price, p.Cost)
	return nil
}

// ProfitMargin = (price-cost)/price*100, arredondado em 2 casas.
func ProfitMargin(price, cost decimal.Decimal) decimal.Decimal {
	if !price.IsPositive() {
		return decimal.Zero
	}
	return price.Sub(cost).Div(price).Mul(hundred).Round(2)
}

// LowStock devolve os produtos com stock <= minStock, na ordem recebida.
func LowStock(products []models.Product) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range products {
		if p.Stock <= p.MinStock {
			out = append(out, p)
		}
	}
	return out
}
