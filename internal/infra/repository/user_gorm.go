package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type UserGormRepository struct {
	base
}

var _ barber.Repository = (*UserGormRepository)(nil)

const maxShopResults = 50

func NewUserGormRepository(db *gorm.DB, timeout time.Duration) *UserGormRepository {
	return &UserGormRepository{base: newBase(db, timeout)}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

// CreateShopWithOwner grava a loja e o admin juntos; o ID da loja vem do chamador.
func (r *UserGormRepository) CreateShopWithOwner(
	ctx context.Context,
	shop *models.Barbershop,
	owner *models.User,
) error {

	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shop).Error; err != nil {
			return err
		}
		owner.ShopID = shop.ID
		owner.ShopName = shop.Name
		return tx.Create(owner).Error
	})
	return storageErr("create_shop", err)
}

func (r *UserGormRepository) GetBarbershop(
	ctx context.Context,
	id string,
) (*models.Barbershop, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	var shop models.Barbershop
	if err := db.Where("id = ?", id).First(&shop).Error; err != nil {
		return nil, findErr("get_barbershop", "barbershop_not_found", err)
	}
	return &shop, nil
}

// ListBarbershops lista as lojas que têm admin, filtrando pelo nome sem
// diferenciar maiúsculas. Serve à busca do cadastro de barbeiro.
func (r *UserGormRepository) ListBarbershops(ctx context.Context, search string) ([]models.Barbershop, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Model(&models.Barbershop{}).
		Where("EXISTS (SELECT 1 FROM users WHERE users.shop_id = barbershops.id AND users.role = ?)", "admin")
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where("LOWER(barbershops.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var shops []models.Barbershop
	if err := q.Order("name ASC").Limit(maxShopResults).Find(&shops).Error; err != nil {
		return nil, storageErr("list_barbershops", err)
	}
	return shops, nil
}

// UpdateBarbershop regrava os dados da loja e replica o nome nos perfis.
func (r *UserGormRepository) UpdateBarbershop(ctx context.Context, shop *models.Barbershop) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Barbershop{}).
			Where("id = ?", shop.ID).
			Updates(map[string]any{
				"name":       shop.Name,
				"phone":      shop.Phone,
				"address":    shop.Address,
				"timezone":   shop.Timezone,
				"updated_at": shop.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrNotFound("barbershop_not_found")
		}
		return tx.Model(&models.User{}).
			Where("shop_id = ?", shop.ID).
			Update("shop_name", shop.Name).Error
	})
	return storageErr("update_barbershop", err)
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return storageErr("create_user", db.Create(u).Error)
}

func (r *UserGormRepository) GetUser(
	ctx context.Context,
	shopID, id string,
) (*models.User, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	var u models.User
	if err := db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&u).Error; err != nil {
		return nil, findErr("get_user", "user_not_found", err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindUser(ctx context.Context, id string) (*models.User, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var u models.User
	if err := db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, findErr("find_user", "user_not_found", err)
	}
	return &u, nil
}

func (r *UserGormRepository) ListUsers(
	ctx context.Context,
	shopID string,
	f barber.ListFilter,
) ([]models.User, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Where("shop_id = ?", shopID)
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}

	var users []models.User
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		return nil, storageErr("list_users", err)
	}
	return users, nil
}

// --------------------------------------------------
// Status (escrita condicional)
// --------------------------------------------------

func (r *UserGormRepository) ChangeStatus(
	ctx context.Context,
	ch barber.StatusChange,
) (*models.User, error) {

	db, cancel := r.conn(ctx)
	defer cancel()

	updates := map[string]any{
		"status":     string(ch.To),
		"updated_at": ch.At,
		"updated_by": ch.ActorID,
	}
	if ch.Approval {
		updates["approved_at"] = ch.At
		updates["approved_by"] = ch.ActorID
	}

	return cas(db, "change_user_status", "user_not_found",
		ch.ShopID, ch.UserID,
		map[string]any{"status": string(ch.From), "role": "barber"},
		updates,
		func(cur *models.User) error {
			if cur.Role != "barber" {
				return httperr.ErrForbidden("not_a_barber")
			}
			return &httperr.InvalidTransition{Entity: "barber", From: cur.Status, To: string(ch.To)}
		},
	)
}
