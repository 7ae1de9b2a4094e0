package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Goqerti/yeni/errors"
	"github.com/Goqerti/yeni/models"
)

func TestValidateTourists(t *testing.T) {
	assert.NoError(t, ValidateTourists([]string{"Anar Məmmədov"}))

	err := ValidateTourists(nil)
	assert.Error(t, err)
	appErr := errors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)

	assert.Error(t, ValidateTourists([]string{"Anar", "   "}))
}

func TestValidateCostPair(t *testing.T) {
	assert.NoError(t, ValidateCostPair(nil))
	assert.NoError(t, ValidateCostPair(&models.CostPair{Amount: 100, Currency: "AZN"}))
	assert.NoError(t, ValidateCostPair(&models.CostPair{Amount: 0, Currency: ""}))

	assert.Error(t, ValidateCostPair(&models.CostPair{Amount: -1, Currency: "AZN"}))
	assert.Error(t, ValidateCostPair(&models.CostPair{Amount: 10, Currency: "AZ"}))
	assert.Error(t, ValidateCostPair(&models.CostPair{Amount: 10, Currency: "A1N"}))
}
