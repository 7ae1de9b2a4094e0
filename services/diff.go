package services

import (
	"fmt"
	"strings"

	"github.com/Goqerti/yeni/models"
)

// trackedField izlənən skalyar sahə + insan üçün etiketi.
type trackedField struct {
	label string
	value func(*models.Order) string
}

var trackedFields = []trackedField{
	{"Status", func(o *models.Order) string { return o.Status }},
	{"Xarici şirkət", func(o *models.Order) string { return o.XariciSirket }},
	{"Rez. nömrəsi", func(o *models.Order) string { return o.RezNomresi }},
	{"Ödəniş statusu", func(o *models.Order) string { return o.PaymentStatus }},
}

func formatCostPair(pair *models.CostPair) string {
	var amount float64
	var currency string
	if pair != nil {
		amount = pair.Amount
		currency = pair.Currency
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// FormatChanges iki sifariş versiyası arasında izlənən sahələrin fərqini
// sətir-sətir qaytarır; fərq yoxdursa boş sətir. Nəticə yalnız audit və
// operator bildirişi üçündür, geri parse edilmir.
func FormatChanges(original, updated *models.Order) string {
	var changes []string

	originalTourists := strings.Join(original.Tourists, ", ")
	updatedTourists := strings.Join(updated.Tourists, ", ")
	if originalTourists != updatedTourists {
		changes = append(changes, fmt.Sprintf("- Turistlər: '%s' -> '%s'", originalTourists, updatedTourists))
	}

	for _, field := range trackedFields {
		oldVal, newVal := field.value(original), field.value(updated)
		if oldVal != newVal {
			changes = append(changes, fmt.Sprintf("- %s: '%s' -> '%s'", field.label, oldVal, newVal))
		}
	}

	originalAlish, updatedAlish := formatCostPair(original.Alish), formatCostPair(updated.Alish)
	if originalAlish != updatedAlish {
		changes = append(changes, fmt.Sprintf("- Alış qiyməti: '%s' -> '%s'", originalAlish, updatedAlish))
	}

	originalSatish, updatedSatish := formatCostPair(original.Satish), formatCostPair(updated.Satish)
	if originalSatish != updatedSatish {
		changes = append(changes, fmt.Sprintf("- Satış qiyməti: '%s' -> '%s'", originalSatish, updatedSatish))
	}

	if len(changes) == 0 {
		return ""
	}
	return "Dəyişikliklər:\n" + strings.Join(changes, "\n")
}
