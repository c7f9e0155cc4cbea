package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

func TestValidateService(t *testing.T) {
	s := &models.Service{Name: " Corte ", Price: decimal.NewFromInt(0), DurationMin: 30}
	require.NoError(t, ValidateService(s))
	assert.Equal(t, "Corte", s.Name)

	s.Price = decimal.NewFromInt(-1)
	assert.True(t, httperr.IsBusiness(ValidateService(s), "invalid_price"))

	s.Price = decimal.NewFromInt(10)
	s.DurationMin = 0
	assert.True(t, httperr.IsBusiness(ValidateService(s), "invalid_duration"))
}

func TestCheckPricingChange(t *testing.T) {
	current := &models.Service{Name: "Corte", Price: decimal.NewFromInt(40), DurationMin: 30}

	renamed := *current
	renamed.Name = "Corte social"
	assert.NoError(t, CheckPricingChange(current, &renamed, true))

	repriced := *current
	repriced.Price = decimal.RequireFromString("40.00")
	assert.NoError(t, CheckPricingChange(current, &repriced, true))

	repriced.Price = decimal.NewFromInt(50)
	err := CheckPricingChange(current, &repriced, true)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
	assert.NoError(t, CheckPricingChange(current, &repriced, false))

	longer := *current
	longer.DurationMin = 45
	assert.True(t, httperr.IsBusiness(CheckPricingChange(current, &longer, true), "service_in_use"))
}
