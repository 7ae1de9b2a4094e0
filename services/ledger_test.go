package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Goqerti/yeni/constants"
	"github.com/Goqerti/yeni/models"
)

func TestCalculateGelirSameCurrency(t *testing.T) {
	order := &models.Order{
		Alish:  &models.CostPair{Amount: 100.10, Currency: "AZN"},
		Satish: &models.CostPair{Amount: 150.355, Currency: "AZN"},
	}

	gelir := CalculateGelir(order)

	assert.Equal(t, 50.26, gelir.Amount)
	assert.Equal(t, "AZN", gelir.Currency)
	assert.Empty(t, gelir.Note)
}

func TestCalculateGelirNegative(t *testing.T) {
	order := &models.Order{
		Alish:  &models.CostPair{Amount: 500, Currency: "USD"},
		Satish: &models.CostPair{Amount: 450, Currency: "USD"},
	}

	gelir := CalculateGelir(order)

	assert.Equal(t, -50.0, gelir.Amount)
	assert.Equal(t, "USD", gelir.Currency)
}

func TestCalculateGelirMismatchedCurrencies(t *testing.T) {
	order := &models.Order{
		Alish:  &models.CostPair{Amount: 100, Currency: "AZN"},
		Satish: &models.CostPair{Amount: 200, Currency: "USD"},
	}

	gelir := CalculateGelir(order)

	assert.Equal(t, "N/A", gelir.Currency)
	assert.Equal(t, GelirMismatchNote, gelir.Note)
	assert.Zero(t, gelir.Amount)
}

func TestCalculateGelirMissingPairs(t *testing.T) {
	gelir := CalculateGelir(&models.Order{})

	assert.Equal(t, "N/A", gelir.Currency)
	assert.Equal(t, GelirMismatchNote, gelir.Note)
}

func TestCalculateOverallPaymentStatus(t *testing.T) {
	receipt := "uploads/receipt.pdf"

	tests := []struct {
		name     string
		details  *models.PaymentDetails
		expected string
	}{
		{"nil details", nil, constants.OverallUnpaid},
		{
			"empty details",
			&models.PaymentDetails{},
			constants.OverallUnpaid,
		},
		{
			"all paid",
			&models.PaymentDetails{
				Hotels:    []models.HotelPayment{{Name: "Hilton", Paid: true, ReceiptPath: &receipt}},
				Transport: &models.PaymentEntry{Paid: true},
			},
			constants.OverallPaid,
		},
		{
			"partially paid",
			&models.PaymentDetails{
				Hotels:    []models.HotelPayment{{Name: "Hilton", Paid: true}},
				Transport: &models.PaymentEntry{Paid: false},
			},
			constants.OverallPartial,
		},
		{
			"none paid",
			&models.PaymentDetails{
				Hotels: []models.HotelPayment{{Name: "Hilton"}, {Name: "Fairmont"}},
			},
			constants.OverallUnpaid,
		},
		{
			"unnamed hotel rows ignored",
			&models.PaymentDetails{
				Hotels: []models.HotelPayment{{Name: "", Paid: false}},
			},
			constants.OverallUnpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateOverallPaymentStatus(tt.details))
		})
	}
}

func TestEnsurePaymentDetailsFillsEmptyOrder(t *testing.T) {
	order := &models.Order{
		Hotels: []models.Hotel{{OtelAdi: "Hilton"}},
	}

	EnsurePaymentDetails(order)

	assert.NotNil(t, order.PaymentDetails)
	assert.Len(t, order.PaymentDetails.Hotels, 1)
	assert.Equal(t, "Hilton", order.PaymentDetails.Hotels[0].Name)
	assert.False(t, order.PaymentDetails.Hotels[0].Paid)
	assert.NotNil(t, order.PaymentDetails.Transport)
	for _, key := range constants.CostKeys {
		entry, ok := order.PaymentDetails.DetailedCosts[key]
		assert.True(t, ok, "cost key %s", key)
		assert.False(t, entry.Paid)
	}
}

func TestEnsurePaymentDetailsKeepsPaidFlagsByName(t *testing.T) {
	receipt := "uploads/old.pdf"
	order := &models.Order{
		Hotels: []models.Hotel{{OtelAdi: "Hilton"}, {OtelAdi: "Fairmont"}},
		PaymentDetails: &models.PaymentDetails{
			Hotels: []models.HotelPayment{
				{Name: "Hilton", Paid: true, ReceiptPath: &receipt},
				{Name: "Silinmiş Otel", Paid: true},
			},
		},
	}

	EnsurePaymentDetails(order)

	hotels := order.PaymentDetails.Hotels
	assert.Len(t, hotels, 2)
	assert.True(t, hotels[0].Paid)
	assert.Equal(t, &receipt, hotels[0].ReceiptPath)
	assert.Equal(t, "Fairmont", hotels[1].Name)
	assert.False(t, hotels[1].Paid)
}

func TestEnsurePaymentDetailsConfirmationPathWins(t *testing.T) {
	old := "uploads/old.pdf"
	order := &models.Order{
		Hotels: []models.Hotel{{OtelAdi: "Hilton", ConfirmationPath: "uploads/new.pdf"}},
		PaymentDetails: &models.PaymentDetails{
			Hotels: []models.HotelPayment{{Name: "Hilton", Paid: true, ReceiptPath: &old}},
		},
	}

	EnsurePaymentDetails(order)

	assert.NotNil(t, order.PaymentDetails.Hotels[0].ReceiptPath)
	assert.Equal(t, "uploads/new.pdf", *order.PaymentDetails.Hotels[0].ReceiptPath)
	assert.True(t, order.PaymentDetails.Hotels[0].Paid)
}

func TestEnsurePaymentDetailsIdempotent(t *testing.T) {
	order := &models.Order{
		Hotels: []models.Hotel{{OtelAdi: "Hilton", ConfirmationPath: "uploads/conf.pdf"}},
	}

	EnsurePaymentDetails(order)
	first := *order.PaymentDetails
	EnsurePaymentDetails(order)

	assert.Equal(t, first.Hotels, order.PaymentDetails.Hotels)
	assert.Equal(t, first.Transport, order.PaymentDetails.Transport)
	assert.Equal(t, first.DetailedCosts, order.PaymentDetails.DetailedCosts)
}

func TestEnsurePaymentDetailsKeepsExtraCostKeys(t *testing.T) {
	order := &models.Order{
		PaymentDetails: &models.PaymentDetails{
			DetailedCosts: map[string]models.PaymentEntry{
				"sigorta": {Paid: true},
			},
		},
	}

	EnsurePaymentDetails(order)

	entry, ok := order.PaymentDetails.DetailedCosts["sigorta"]
	assert.True(t, ok)
	assert.True(t, entry.Paid)
	assert.Len(t, order.PaymentDetails.DetailedCosts, len(constants.CostKeys)+1)
}
