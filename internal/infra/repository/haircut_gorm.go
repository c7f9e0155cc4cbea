package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/haircut"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type HaircutGormRepository struct {
	base
}

var _ haircut.Repository = (*HaircutGormRepository)(nil)

func NewHaircutGormRepository(db *gorm.DB, timeout time.Duration) *HaircutGormRepository {
	return &HaircutGormRepository{base: newBase(db, timeout)}
}

func (r *HaircutGormRepository) Create(ctx context.Context, rec *models.HaircutRecord) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return storageErr("create_haircut", db.Create(rec).Error)
}

func (r *HaircutGormRepository) Get(
	ctx context.Context,
	shopID, id string,
) (*models.HaircutRecord, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	var rec models.HaircutRecord
	if err := db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&rec).Error; err != nil {
		return nil, findErr("get_haircut", "haircut_not_found", err)
	}
	return &rec, nil
}

func (r *HaircutGormRepository) List(
	ctx context.Context,
	shopID string,
	f haircut.ListFilter,
) ([]models.HaircutRecord, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Where("shop_id = ?", shopID)
	if f.BarberID != "" {
		q = q.Where("barber_id = ?", f.BarberID)
	}
	if f.Approval != "" {
		q = q.Where("approval_status = ?", string(f.Approval))
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var recs []models.HaircutRecord
	if err := q.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, storageErr("list_haircuts", err)
	}
	return recs, nil
}

func (r *HaircutGormRepository) CountByService(
	ctx context.Context,
	shopID, serviceID string,
) (int64, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	var n int64
	if err := db.Model(&models.HaircutRecord{}).
		Where("shop_id = ? AND service_id = ?", shopID, serviceID).
		Count(&n).Error; err != nil {
		return 0, storageErr("count_haircuts", err)
	}
	return n, nil
}

// ChangeApproval grava status e approval_status no mesmo UPDATE condicional.
func (r *HaircutGormRepository) ChangeApproval(
	ctx context.Context,
	ch haircut.ApprovalChange,
) (*models.HaircutRecord, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	updates := map[string]any{
		"status":          string(ch.To.Status),
		"approval_status": string(ch.To.Approval),
		"updated_at":      ch.At,
		"updated_by":      ch.ApproverID,
	}
	if ch.To.Approval == haircut.ApprovalApproved {
		updates["approved_at"] = ch.At
		updates["approved_by"] = ch.ApproverID
		updates["approved_by_name"] = ch.ApproverName
	}

	return cas(db, "change_haircut_approval", "haircut_not_found",
		ch.ShopID, ch.ID,
		map[string]any{
			"status":          string(ch.From.Status),
			"approval_status": string(ch.From.Approval),
		},
		updates,
		func(cur *models.HaircutRecord) error {
			return &httperr.InvalidTransition{
				Entity: "haircut",
				From:   haircut.PairOf(cur).String(),
				To:     ch.To.String(),
			}
		},
	)
}
