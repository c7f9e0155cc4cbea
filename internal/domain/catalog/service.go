package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

func ValidateService(s *models.Service) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)

	switch {
	case s.Name == "":
		return httperr.ErrBusiness("name_required")
	case s.Price.IsNegative():
		return httperr.ErrBusiness("invalid_price")
	case s.DurationMin <= 0:
		return httperr.ErrBusiness("invalid_duration")
	}
	return nil
}

var ErrServiceInUse = httperr.ErrConflict("service_in_use")

// CheckPricingChange: depois que um registro de corte usa o serviço,
// preço e duração ficam congelados. Nome, descrição e ativo continuam editáveis.
func CheckPricingChange(current, next *models.Service, referenced bool) error {
	if !referenced {
		return nil
	}
	if PricingChanged(current, next) {
		return ErrServiceInUse
	}
	return nil
}

func PricingChanged(current, next *models.Service) bool {
	return !current.Price.Equal(next.Price) || current.DurationMin != next.DurationMin
}

type Repository interface {
	List(ctx context.Context, shopID string, activeOnly bool) ([]models.Service, error)
	Get(ctx context.Context, shopID, id string) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	// Update com freezePricing só grava se nenhum corte usa o serviço.
	Update(ctx context.Context, s *models.Service, freezePricing bool) error
	// Delete só remove serviço sem cortes; com cortes devolve ErrServiceInUse.
	Delete(ctx context.Context, shopID, id string) error
}
