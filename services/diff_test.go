package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Goqerti/yeni/models"
)

func TestFormatChangesNoDiff(t *testing.T) {
	order := &models.Order{
		Tourists:   []string{"Anar Məmmədov"},
		Status:     "Təsdiqlənib",
		RezNomresi: "REZ-100",
		Satish:     &models.CostPair{Amount: 1200, Currency: "AZN"},
	}
	clone := *order

	assert.Empty(t, FormatChanges(order, &clone))
}

func TestFormatChangesTrackedFields(t *testing.T) {
	original := &models.Order{
		Tourists:      []string{"Anar Məmmədov"},
		Status:        "Gözləyir",
		XariciSirket:  "Travelco",
		RezNomresi:    "REZ-100",
		PaymentStatus: "Ödənilməyib",
	}
	updated := &models.Order{
		Tourists:      []string{"Anar Məmmədov", "Leyla Əliyeva"},
		Status:        "Təsdiqlənib",
		XariciSirket:  "Travelco",
		RezNomresi:    "REZ-101",
		PaymentStatus: "Ödənilib",
	}

	got := FormatChanges(original, updated)

	assert.Contains(t, got, "Dəyişikliklər:")
	assert.Contains(t, got, "- Turistlər: 'Anar Məmmədov' -> 'Anar Məmmədov, Leyla Əliyeva'")
	assert.Contains(t, got, "- Status: 'Gözləyir' -> 'Təsdiqlənib'")
	assert.Contains(t, got, "- Rez. nömrəsi: 'REZ-100' -> 'REZ-101'")
	assert.Contains(t, got, "- Ödəniş statusu: 'Ödənilməyib' -> 'Ödənilib'")
	assert.NotContains(t, got, "Xarici şirkət")
}

func TestFormatChangesCostPairs(t *testing.T) {
	original := &models.Order{
		Tourists: []string{"Anar Məmmədov"},
		Alish:    &models.CostPair{Amount: 800, Currency: "AZN"},
	}
	updated := &models.Order{
		Tourists: []string{"Anar Məmmədov"},
		Alish:    &models.CostPair{Amount: 850.5, Currency: "AZN"},
		Satish:   &models.CostPair{Amount: 1200, Currency: "AZN"},
	}

	got := FormatChanges(original, updated)

	assert.Contains(t, got, "- Alış qiyməti: '800.00 AZN' -> '850.50 AZN'")
	assert.Contains(t, got, "- Satış qiyməti: '0.00 ' -> '1200.00 AZN'")
}
