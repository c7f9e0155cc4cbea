package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type CatalogGormRepository struct {
	base
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB, timeout time.Duration) *CatalogGormRepository {
	return &CatalogGormRepository{base: newBase(db, timeout)}
}

func (r *CatalogGormRepository) List(
	ctx context.Context,
	shopID string,
	activeOnly bool,
) ([]models.Service, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Where("shop_id = ?", shopID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, storageErr("list_services", err)
	}
	return services, nil
}

func (r *CatalogGormRepository) Get(ctx context.Context, shopID, id string) (*models.Service, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var s models.Service
	if err := db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&s).Error; err != nil {
		return nil, findErr("get_service", "service_not_found", err)
	}
	return &s, nil
}

func (r *CatalogGormRepository) Create(ctx context.Context, s *models.Service) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return storageErr("create_service", db.Create(s).Error)
}

// unreferenced é a guarda de escrita: nenhum corte aponta para o serviço.
const unreferenced = "NOT EXISTS (SELECT 1 FROM haircuts WHERE haircuts.service_id = services.id)"

// Update regrava os campos editáveis; shop_id e created_at nunca mudam.
// Com freezePricing a checagem de uso vai no próprio UPDATE, então um corte
// gravado depois da contagem do use case ainda barra a troca de preço.
func (r *CatalogGormRepository) Update(ctx context.Context, s *models.Service, freezePricing bool) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Model(&models.Service{}).
		Where("id = ? AND shop_id = ?", s.ID, s.ShopID)
	if freezePricing {
		q = q.Where(unreferenced)
	}

	res := q.Updates(map[string]any{
		"name":         s.Name,
		"description":  s.Description,
		"price":        s.Price,
		"duration_min": s.DurationMin,
		"active":       s.Active,
		"updated_at":   s.UpdatedAt,
		"updated_by":   s.UpdatedBy,
	})
	if res.Error != nil {
		return storageErr("update_service", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missErr(ctx, s.ShopID, s.ID, freezePricing)
	}
	return nil
}

func (r *CatalogGormRepository) Delete(ctx context.Context, shopID, id string) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.
		Where("id = ? AND shop_id = ?", id, shopID).
		Where(unreferenced).
		Delete(&models.Service{})
	if res.Error != nil {
		return storageErr("delete_service", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missErr(ctx, shopID, id, true)
	}
	return nil
}

// missErr explica uma escrita que não afetou linha: serviço inexistente ou em uso.
func (r *CatalogGormRepository) missErr(ctx context.Context, shopID, id string, guarded bool) error {
	if _, err := r.Get(ctx, shopID, id); err != nil {
		return err
	}
	if guarded {
		return catalog.ErrServiceInUse
	}
	return httperr.ErrNotFound("service_not_found")
}
