package services

import (
	"math"

	"github.com/Goqerti/yeni/constants"
	"github.com/Goqerti/yeni/models"
)

// GelirMismatchNote qarışıq valyutalı sentinel qeydidir.
const GelirMismatchNote = "Fərqli valyutalar"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateGelir sifarişin gəlirini hesablayır: satış − alış, 2 onluq dəqiqliklə.
// Valyutalar fərqli və ya boş olduqda N/A sentineli qaytarılır; bu dəyər heç
// bir valyuta cəminə daxil edilməməlidir.
func CalculateGelir(order *models.Order) models.Gelir {
	var alishAmount, satishAmount float64
	var alishCurrency, satishCurrency string

	if order.Alish != nil {
		alishAmount = order.Alish.Amount
		alishCurrency = order.Alish.Currency
	}
	if order.Satish != nil {
		satishAmount = order.Satish.Amount
		satishCurrency = order.Satish.Currency
	}

	if alishCurrency != "" && alishCurrency == satishCurrency {
		return models.Gelir{
			Amount:   round2(satishAmount - alishAmount),
			Currency: satishCurrency,
		}
	}

	return models.Gelir{Amount: 0, Currency: "N/A", Note: GelirMismatchNote}
}

// CalculateOverallPaymentStatus bütün paid bayraqlarını toplayıb unpaid /
// partial / paid qaytarır. Adı boş otel sətirləri sayılmır.
func CalculateOverallPaymentStatus(details *models.PaymentDetails) string {
	var flags []bool
	if details != nil {
		for _, h := range details.Hotels {
			if h.Name != "" {
				flags = append(flags, h.Paid)
			}
		}
		if details.Transport != nil {
			flags = append(flags, details.Transport.Paid)
		}
		for _, entry := range details.DetailedCosts {
			flags = append(flags, entry.Paid)
		}
	}

	if len(flags) == 0 {
		return constants.OverallUnpaid
	}

	anyPaid, allPaid := false, true
	for _, paid := range flags {
		if paid {
			anyPaid = true
		} else {
			allPaid = false
		}
	}

	switch {
	case allPaid:
		return constants.OverallPaid
	case anyPaid:
		return constants.OverallPartial
	default:
		return constants.OverallUnpaid
	}
}

// EnsurePaymentDetails sifarişin paymentDetails strukturunu tam və otel
// siyahısı ilə uyğun hala gətirir. Köhnə sxemli sifarişlərdə oxu zamanı
// miqrasiya rolunu oynayır; təkrar çağırış nəticəni dəyişmir.
//
// Otel ödəniş sətirləri ada görə uyğunlaşdırılır: mövcud sətrin paid /
// receiptPath dəyərləri saxlanılır, otel sətrindəki daha yeni confirmationPath
// saxlanılan receiptPath-ı üstələyir, yeni otellər paid=false ilə yaranır,
// silinmiş otellərin sətirləri düşür.
func EnsurePaymentDetails(order *models.Order) *models.Order {
	if order.PaymentDetails == nil {
		order.PaymentDetails = &models.PaymentDetails{}
	}
	details := order.PaymentDetails

	details.Hotels = reconcileHotelPayments(order.Hotels, details.Hotels)

	if details.Transport == nil {
		details.Transport = &models.PaymentEntry{Paid: false, ReceiptPath: nil}
	}

	if details.DetailedCosts == nil {
		details.DetailedCosts = make(map[string]models.PaymentEntry, len(constants.CostKeys))
	}
	for _, key := range constants.CostKeys {
		if _, ok := details.DetailedCosts[key]; !ok {
			details.DetailedCosts[key] = models.PaymentEntry{Paid: false, ReceiptPath: nil}
		}
	}

	return order
}

// reconcileHotelPayments cari otel sətirlərinə birəbir uyğun ödəniş siyahısı
// qurur.
func reconcileHotelPayments(hotels []models.Hotel, existing []models.HotelPayment) []models.HotelPayment {
	result := make([]models.HotelPayment, 0, len(hotels))
	for _, h := range hotels {
		entry := models.HotelPayment{Name: h.OtelAdi, Paid: false, ReceiptPath: nil}
		for _, prev := range existing {
			if prev.Name == h.OtelAdi {
				entry.Paid = prev.Paid
				entry.ReceiptPath = prev.ReceiptPath
				break
			}
		}
		if h.ConfirmationPath != "" {
			path := h.ConfirmationPath
			entry.ReceiptPath = &path
		}
		result = append(result, entry)
	}
	return result
}
