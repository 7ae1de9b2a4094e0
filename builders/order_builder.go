package builders

import (
	"github.com/Goqerti/yeni/models"
)

// OrderBuilder sifarişi addım-addım qurmağa kömək edir.
type OrderBuilder struct {
	order *models.Order
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		order: &models.Order{},
	}
}

func (b *OrderBuilder) WithSatisNo(satisNo string) *OrderBuilder {
	b.order.SatisNo = satisNo
	return b
}

func (b *OrderBuilder) WithTourists(tourists []string) *OrderBuilder {
	b.order.Tourists = tourists
	return b
}

func (b *OrderBuilder) WithAlish(alish *models.CostPair) *OrderBuilder {
	b.order.Alish = alish
	return b
}

func (b *OrderBuilder) WithSatish(satish *models.CostPair) *OrderBuilder {
	b.order.Satish = satish
	return b
}

func (b *OrderBuilder) WithXariciSirket(company string) *OrderBuilder {
	b.order.XariciSirket = company
	return b
}

func (b *OrderBuilder) WithRezNomresi(rezNomresi string) *OrderBuilder {
	b.order.RezNomresi = rezNomresi
	return b
}

func (b *OrderBuilder) WithStatus(status string) *OrderBuilder {
	b.order.Status = status
	return b
}

func (b *OrderBuilder) WithQeyd(qeyd string) *OrderBuilder {
	b.order.Qeyd = qeyd
	return b
}

func (b *OrderBuilder) WithHotels(hotels []models.Hotel) *OrderBuilder {
	b.order.Hotels = hotels
	return b
}

func (b *OrderBuilder) WithTransport(transport *models.Transport) *OrderBuilder {
	b.order.Transport = transport
	return b
}

func (b *OrderBuilder) WithGuests(adults, children int) *OrderBuilder {
	b.order.AdultGuests = adults
	b.order.ChildGuests = children
	return b
}

func (b *OrderBuilder) WithPaymentStatus(status string) *OrderBuilder {
	b.order.PaymentStatus = status
	return b
}

func (b *OrderBuilder) WithPaymentDueDate(dueDate string) *OrderBuilder {
	b.order.PaymentDueDate = dueDate
	return b
}

func (b *OrderBuilder) WithDetailedCosts(costs map[string]float64) *OrderBuilder {
	b.order.DetailedCosts = costs
	return b
}

func (b *OrderBuilder) WithCreator(username, timestamp string) *OrderBuilder {
	b.order.CreatedBy = username
	b.order.CreationTimestamp = timestamp
	return b
}

// Build hazır sifarişi qaytarır.
func (b *OrderBuilder) Build() *models.Order {
	return b.order
}
