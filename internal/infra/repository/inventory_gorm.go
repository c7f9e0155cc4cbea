package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type InventoryGormRepository struct {
	base
}

var _ inventory.Repository = (*InventoryGormRepository)(nil)

func NewInventoryGormRepository(db *gorm.DB, timeout time.Duration) *InventoryGormRepository {
	return &InventoryGormRepository{base: newBase(db, timeout)}
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (r *InventoryGormRepository) ListProducts(ctx context.Context, shopID string) ([]models.Product, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var products []models.Product
	if err := db.
		Where("shop_id = ?", shopID).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, storageErr("list_products", err)
	}
	return products, nil
}

func (r *InventoryGormRepository) GetProduct(ctx context.Context, shopID, id string) (*models.Product, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var p models.Product
	if err := db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&p).Error; err != nil {
		return nil, findErr("get_product", "product_not_found", err)
	}
	return &p, nil
}

func (r *InventoryGormRepository) GetByBarcode(ctx context.Context, shopID, barcode string) (*models.Product, error) {
	if barcode == "" {
		return nil, httperr.ErrNotFound("product_not_found")
	}

	db, cancel := r.conn(ctx)
	defer cancel()

	var p models.Product
	if err := db.
		Where("shop_id = ? AND barcode = ?", shopID, barcode).
		First(&p).Error; err != nil {
		return nil, findErr("get_product_by_barcode", "product_not_found", err)
	}
	return &p, nil
}

// SaveProduct cria (ID vazio) ou sobrescreve os campos editáveis.
// O barcode é conferido antes e também protegido pelo índice único parcial.
// Na edição o estoque fica de fora: ele só muda por Sell ou AdjustStock.
func (r *InventoryGormRepository) SaveProduct(ctx context.Context, p *models.Product) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if p.Barcode != "" {
		var owners int64
		if err := db.Model(&models.Product{}).
			Where("shop_id = ? AND barcode = ? AND id <> ?", p.ShopID, p.Barcode, p.ID).
			Count(&owners).Error; err != nil {
			return storageErr("save_product", err)
		}
		if owners > 0 {
			return httperr.ErrConflict("barcode_in_use")
		}
	}

	var err error
	if p.ID == "" {
		err = db.Create(p).Error
	} else {
		res := db.Model(&models.Product{}).
			Where("id = ? AND shop_id = ?", p.ID, p.ShopID).
			Updates(map[string]any{
				"name":          p.Name,
				"category":      p.Category,
				"description":   p.Description,
				"cost":          p.Cost,
				"price":         p.Price,
				"profit_margin": p.ProfitMargin,
				"min_stock":     p.MinStock,
				"barcode":       p.Barcode,
				"updated_at":    p.UpdatedAt,
				"updated_by":    p.UpdatedBy,
			})
		err = res.Error
		if err == nil && res.RowsAffected == 0 {
			return httperr.ErrNotFound("product_not_found")
		}
	}

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("barcode_in_use")
	}
	return storageErr("save_product", err)
}

// AdjustStock soma delta ao estoque no próprio UPDATE; só grava se o
// resultado não ficar negativo, assim uma venda concorrente nunca é desfeita.
func (r *InventoryGormRepository) AdjustStock(
	ctx context.Context,
	shopID, id string,
	delta int,
	actorID string,
	now time.Time,
) (*models.Product, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.Model(&models.Product{}).
		Where("id = ? AND shop_id = ? AND stock + ? >= 0", id, shopID, delta).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock + ?", delta),
			"updated_at": now,
			"updated_by": actorID,
		})
	if res.Error != nil {
		return nil, storageErr("adjust_stock", res.Error)
	}

	var p models.Product
	if err := db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&p).Error; err != nil {
		return nil, findErr("adjust_stock", "product_not_found", err)
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrInsufficientStock
	}
	return &p, nil
}

func (r *InventoryGormRepository) SetImageURL(ctx context.Context, shopID, id, url, actorID string) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.Model(&models.Product{}).
		Where("id = ? AND shop_id = ?", id, shopID).
		Updates(map[string]any{
			"image_url":  url,
			"updated_at": time.Now(),
			"updated_by": actorID,
		})
	if res.Error != nil {
		return storageErr("set_product_image", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("product_not_found")
	}
	return nil
}

func (r *InventoryGormRepository) DeleteProduct(ctx context.Context, shopID, id string) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.Where("id = ? AND shop_id = ?", id, shopID).Delete(&models.Product{})
	if res.Error != nil {
		return storageErr("delete_product", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("product_not_found")
	}
	return nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

// Sell roda em uma transação: lê o produto, baixa o estoque só se ainda houver
// quantidade suficiente (UPDATE ... WHERE stock >= q) e grava a venda.
// Qualquer falha desfaz as duas escritas.
func (r *InventoryGormRepository) Sell(
	ctx context.Context,
	shopID, productID string,
	quantity int,
	a actor.Actor,
	now time.Time,
) (*models.SaleRecord, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	var sale *models.SaleRecord
	err := db.Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.
			Where("id = ? AND shop_id = ?", productID, shopID).
			First(&p).Error; err != nil {
			return findErr("sell", "product_not_found", err)
		}

		if err := inventory.CheckQuantity(&p, quantity); err != nil {
			return err
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND shop_id = ? AND stock >= ?", productID, shopID, quantity).
			Updates(map[string]any{
				"stock":      gorm.Expr("stock - ?", quantity),
				"updated_at": now,
				"updated_by": a.UserID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// outra venda levou o estoque entre a leitura e a escrita
			return httperr.ErrInsufficientStock
		}

		sale = inventory.NewSale(&p, quantity, a, now)
		return tx.Create(sale).Error
	})
	if err != nil {
		return nil, storageErr("sell", err)
	}
	return sale, nil
}

func (r *InventoryGormRepository) ListSales(
	ctx context.Context,
	shopID string,
	from, to time.Time,
) ([]models.SaleRecord, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Where("shop_id = ?", shopID)
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at < ?", to)
	}

	var sales []models.SaleRecord
	if err := q.Order("created_at DESC").Find(&sales).Error; err != nil {
		return nil, storageErr("list_sales", err)
	}
	return sales, nil
}
