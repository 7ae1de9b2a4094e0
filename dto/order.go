package dto

import (
	"github.com/Goqerti/yeni/models"
)

// CreateOrderRequest yeni sifariş sorğusu.
type CreateOrderRequest struct {
	Tourists       []string           `json:"tourists" binding:"required,min=1"`
	Alish          *models.CostPair   `json:"alish"`
	Satish         *models.CostPair   `json:"satish"`
	XariciSirket   string             `json:"xariciSirket"`
	RezNomresi     string             `json:"rezNomresi"`
	Status         string             `json:"status"`
	Qeyd           string             `json:"qeyd"`
	Hotels         []models.Hotel     `json:"hotels"`
	Transport      *models.Transport  `json:"transport"`
	AdultGuests    int                `json:"adultGuests"`
	ChildGuests    int                `json:"childGuests"`
	PaymentStatus  string             `json:"paymentStatus"`
	PaymentDueDate string             `json:"paymentDueDate"`
	DetailedCosts  map[string]float64 `json:"detailedCosts"`
}

// OrderUpdate update sorğusunun patch strukturudur: nil sahə "dəyişmə"
// deməkdir, qiymətli sahə saxlanılan sifarişin üstünə yazılır. Ümumi
// object-spread əvəzinə hər yenilənə bilən sahə açıq şəkildə modelləşib.
type OrderUpdate struct {
	Tourists       *[]string              `json:"tourists"`
	Alish          *models.CostPair       `json:"alish"`
	Satish         *models.CostPair       `json:"satish"`
	XariciSirket   *string                `json:"xariciSirket"`
	RezNomresi     *string                `json:"rezNomresi"`
	Status         *string                `json:"status"`
	Qeyd           *string                `json:"qeyd"`
	Hotels         *[]models.Hotel        `json:"hotels"`
	Transport      *models.Transport      `json:"transport"`
	AdultGuests    *int                   `json:"adultGuests"`
	ChildGuests    *int                   `json:"childGuests"`
	PaymentStatus  *string                `json:"paymentStatus"`
	PaymentDueDate *string                `json:"paymentDueDate"`
	DetailedCosts  *map[string]float64    `json:"detailedCosts"`
	PaymentDetails *models.PaymentDetails `json:"paymentDetails"`
}

// NoteUpdateRequest qeyd yeniləmə sorğusu; sahə göndərilməyibsə rədd edilir.
type NoteUpdateRequest struct {
	Qeyd *string `json:"qeyd"`
}

// Milestone yaradan istifadəçinin sifariş sayının yuvarlaq həddə çatdığını
// bildirir.
type Milestone struct {
	Count int `json:"count"`
}

// OrderResponse saxlanılan sifariş + törəmə sahələr.
type OrderResponse struct {
	models.Order
	Gelir                *models.Gelir `json:"gelir"`
	OverallPaymentStatus string        `json:"overallPaymentStatus,omitempty"`
	Milestone            *Milestone    `json:"milestone,omitempty"`
}

// ReservationResponse otel qalma sətrinin rezervasiya görünüşü.
type ReservationResponse struct {
	SatisNo     string `json:"satisNo"`
	Turist      string `json:"turist"`
	OtelAdi     string `json:"otelAdi"`
	GirisTarixi string `json:"girisTarixi"`
	CixisTarixi string `json:"cixisTarixi"`
	AdultGuests int    `json:"adultGuests"`
	ChildGuests int    `json:"childGuests"`
}

// CurrencyTotals valyuta üzrə cəmlər; açarlar konfiqurasiya edilən valyuta
// çoxluğudur.
type CurrencyTotals map[string]float64

// HotelReport bir otel üzrə hesabat sətri.
type HotelReport struct {
	OrdersCount int            `json:"ordersCount"`
	Alish       CurrencyTotals `json:"alish"`
	Satish      CurrencyTotals `json:"satish"`
	Gelir       CurrencyTotals `json:"gelir"`
}

// Report qlobal maliyyə hesabatı.
type Report struct {
	TotalAlish  CurrencyTotals          `json:"totalAlish"`
	TotalSatish CurrencyTotals          `json:"totalSatish"`
	TotalGelir  CurrencyTotals          `json:"totalGelir"`
	ByHotel     map[string]*HotelReport `json:"byHotel"`
}

// CompanySummary bir şirkət üzrə yekun.
type CompanySummary struct {
	TotalOrders int            `json:"totalOrders"`
	TotalGelir  CurrencyTotals `json:"totalGelir"`
	TotalDebt   CurrencyTotals `json:"totalDebt"`
}

// CompanyReport şirkət üzrə sifarişlər + yekun.
type CompanyReport struct {
	Orders  []OrderResponse `json:"orders"`
	Summary CompanySummary  `json:"summary"`
}

// CheckinProblem yaxınlaşan giriş tarixli, məlumatı natamam sifariş üçün
// bildiriş sətridir.
type CheckinProblem struct {
	SatisNo     string `json:"satisNo"`
	Turist      string `json:"turist"`
	GirisTarixi string `json:"girisTarixi"`
	Problem     string `json:"problem"`
}
