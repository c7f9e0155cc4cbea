package haircut

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

type ListFilter struct {
	BarberID string
	Approval Approval
	// intervalo [From, To) sobre created_at; zero ignora
	From time.Time
	To   time.Time
}

// ApprovalChange é aplicada de forma condicional: só grava se o par atual for From.
type ApprovalChange struct {
	ShopID       string
	ID           string
	From         Pair
	To           Pair
	ApproverID   string
	ApproverName string
	At           time.Time
}

type Repository interface {
	Create(ctx context.Context, rec *models.HaircutRecord) error
	Get(ctx context.Context, shopID, id string) (*models.HaircutRecord, error)
	List(ctx context.Context, shopID string, f ListFilter) ([]models.HaircutRecord, error)
	CountByService(ctx context.Context, shopID, serviceID string) (int64, error)

	ChangeApproval(ctx context.Context, ch ApprovalChange) (*models.HaircutRecord, error)
}
