package payment

import (
	"context"
	"errors"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/barbershop-manager/internal/config"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

// Link é o checkout gerado para um agendamento.
type Link struct {
	PreferenceID string `json:"preference_id"`
	URL          string `json:"url"`
	SandboxURL   string `json:"sandbox_url,omitempty"`
}

// Links cria links de pagamento para agendamentos.
type Links interface {
	ForAppointment(ctx context.Context, ap *models.Appointment) (*Link, error)
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type MercadoPago struct {
	client   preferenceCreator
	currency string
}

var _ Links = (*MercadoPago)(nil)

func NewMercadoPago(cfg config.MercadoPagoConfig) (*MercadoPago, error) {
	if cfg.AccessToken == "" {
		return nil, errors.New("mercadopago access token is required")
	}

	mpCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{
		client:   preference.NewClient(mpCfg),
		currency: cfg.CurrencyID,
	}, nil
}

// ForAppointment usa o preço congelado no agendamento; external_reference = id do agendamento.
func (m *MercadoPago) ForAppointment(ctx context.Context, ap *models.Appointment) (*Link, error) {
	if !ap.Price.IsPositive() {
		return nil, httperr.ErrBusiness("nothing_to_charge")
	}

	res, err := m.client.Create(ctx, preference.Request{
		ExternalReference: ap.ID,
		Items: []preference.ItemRequest{
			{
				ID:          ap.ServiceID,
				Title:       ap.ServiceName,
				Description: ap.Date + " " + ap.Time + " - " + ap.BarberName,
				Quantity:    1,
				UnitPrice:   ap.Price.InexactFloat64(),
				CurrencyID:  m.currency,
			},
		},
	})
	if err != nil {
		return nil, &httperr.StorageError{Op: "create_payment_link", Err: err}
	}

	return &Link{
		PreferenceID: res.ID,
		URL:          res.InitPoint,
		SandboxURL:   res.SandboxInitPoint,
	}, nil
}
