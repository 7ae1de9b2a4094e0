package models

// CostPair bir məbləğ + valyuta cütüdür (alış və satış üçün).
type CostPair struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Hotel bir sifarişin otel sətri.
type Hotel struct {
	OtelAdi          string  `json:"otelAdi"`
	OtaqKateqoriyasi string  `json:"otaqKateqoriyasi,omitempty"`
	GirisTarixi      string  `json:"girisTarixi,omitempty"` // YYYY-MM-DD
	CixisTarixi      string  `json:"cixisTarixi,omitempty"` // YYYY-MM-DD
	Qiymet           float64 `json:"qiymet,omitempty"`
	ConfirmationPath string  `json:"confirmationPath,omitempty"`
}

// Transport sürücü məlumatları.
type Transport struct {
	SurucuMelumatlari string `json:"surucuMelumatlari,omitempty"`
}

// PaymentEntry tracks whether a single cost item has been settled.
type PaymentEntry struct {
	Paid        bool    `json:"paid"`
	ReceiptPath *string `json:"receiptPath"`
}

// HotelPayment is a PaymentEntry correlated to a hotel line by display name.
// Two hotels with the same name on one order collide; the behaviour is kept
// for compatibility with existing records.
type HotelPayment struct {
	Name        string  `json:"name"`
	Paid        bool    `json:"paid"`
	ReceiptPath *string `json:"receiptPath"`
}

// PaymentDetails is the per-line-item paid/receipt substructure of an order.
type PaymentDetails struct {
	Hotels        []HotelPayment          `json:"hotels"`
	Transport     *PaymentEntry           `json:"transport"`
	DetailedCosts map[string]PaymentEntry `json:"detailedCosts"`
}

// Gelir is derived, never persisted. A currency of "N/A" with a non-empty
// Note marks the mixed-currency sentinel; callers must skip it when summing.
type Gelir struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Note     string  `json:"note,omitempty"`
}

// Order bir turist paketi satışıdır.
type Order struct {
	SatisNo           string             `json:"satisNo"`
	Tourists          []string           `json:"tourists"`
	Alish             *CostPair          `json:"alish,omitempty"`
	Satish            *CostPair          `json:"satish,omitempty"`
	XariciSirket      string             `json:"xariciSirket,omitempty"`
	RezNomresi        string             `json:"rezNomresi,omitempty"`
	Status            string             `json:"status,omitempty"`
	Qeyd              string             `json:"qeyd,omitempty"`
	Hotels            []Hotel            `json:"hotels,omitempty"`
	Transport         *Transport         `json:"transport,omitempty"`
	AdultGuests       int                `json:"adultGuests,omitempty"`
	ChildGuests       int                `json:"childGuests,omitempty"`
	PaymentStatus     string             `json:"paymentStatus,omitempty"`
	PaymentDueDate    string             `json:"paymentDueDate,omitempty"`
	DetailedCosts     map[string]float64 `json:"detailedCosts,omitempty"`
	PaymentDetails    *PaymentDetails    `json:"paymentDetails,omitempty"`
	CreationTimestamp string             `json:"creationTimestamp,omitempty"`
	CreatedBy         string             `json:"createdBy,omitempty"`
}

// PrimaryTourist returns the first tourist name or "-" when the list is empty.
func (o *Order) PrimaryTourist() string {
	if len(o.Tourists) > 0 {
		return o.Tourists[0]
	}
	return "-"
}
