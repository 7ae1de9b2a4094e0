package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Goqerti/yeni/constants"
	"github.com/Goqerti/yeni/dto"
	"github.com/Goqerti/yeni/models"
)

func (s *OrderService) newCurrencyTotals() dto.CurrencyTotals {
	totals := make(dto.CurrencyTotals, len(s.cfg.Currencies))
	for _, cur := range s.cfg.Currencies {
		totals[cur] = 0
	}
	return totals
}

// addToBucket yalnız izlənən valyutaları cəmləyir; kənar valyuta sifarişin
// üstündə qalır, amma heç bir cəmə düşmür.
func addToBucket(totals dto.CurrencyTotals, currency string, amount float64) {
	if _, tracked := totals[currency]; tracked {
		totals[currency] += amount
	}
}

// Reservations otel qalma sətirlərinin düz siyahısını qaytarır; adı və
// tarixləri tam olmayan sətirlər buraxılır.
func (s *OrderService) Reservations(ctx context.Context) ([]dto.ReservationResponse, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	reservations := make([]dto.ReservationResponse, 0)
	for i := range orders {
		order := &orders[i]
		for _, hotel := range order.Hotels {
			if hotel.OtelAdi == "" || hotel.GirisTarixi == "" || hotel.CixisTarixi == "" {
				continue
			}
			reservations = append(reservations, dto.ReservationResponse{
				SatisNo:     order.SatisNo,
				Turist:      order.PrimaryTourist(),
				OtelAdi:     hotel.OtelAdi,
				GirisTarixi: hotel.GirisTarixi,
				CixisTarixi: hotel.CixisTarixi,
				AdultGuests: order.AdultGuests,
				ChildGuests: order.ChildGuests,
			})
		}
	}
	return reservations, nil
}

// Report qlobal maliyyə hesabatını qurur: alış, satış və gəlir valyuta üzrə
// ayrı-ayrı cəmlənir; qarışıq valyutalı gəlir sentineli cəmlərə düşmür.
func (s *OrderService) Report(ctx context.Context) (dto.Report, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return dto.Report{}, err
	}

	report := dto.Report{
		TotalAlish:  s.newCurrencyTotals(),
		TotalSatish: s.newCurrencyTotals(),
		TotalGelir:  s.newCurrencyTotals(),
		ByHotel:     make(map[string]*dto.HotelReport),
	}

	for i := range orders {
		order := &orders[i]
		gelir := CalculateGelir(order)

		if order.Alish != nil && order.Alish.Currency != "" {
			addToBucket(report.TotalAlish, order.Alish.Currency, order.Alish.Amount)
		}
		if order.Satish != nil && order.Satish.Currency != "" {
			addToBucket(report.TotalSatish, order.Satish.Currency, order.Satish.Amount)
		}
		if gelir.Note == "" {
			addToBucket(report.TotalGelir, gelir.Currency, gelir.Amount)
		}

		for _, hotel := range order.Hotels {
			hotelName := strings.TrimSpace(hotel.OtelAdi)
			if hotelName == "" {
				hotelName = "Digər"
			}
			bucket, ok := report.ByHotel[hotelName]
			if !ok {
				bucket = &dto.HotelReport{
					Alish:  s.newCurrencyTotals(),
					Satish: s.newCurrencyTotals(),
					Gelir:  s.newCurrencyTotals(),
				}
				report.ByHotel[hotelName] = bucket
			}
			bucket.OrdersCount++
			if order.Alish != nil && order.Alish.Currency != "" {
				addToBucket(bucket.Alish, order.Alish.Currency, order.Alish.Amount)
			}
			if order.Satish != nil && order.Satish.Currency != "" {
				addToBucket(bucket.Satish, order.Satish.Currency, order.Satish.Amount)
			}
			if gelir.Note == "" {
				addToBucket(bucket.Gelir, gelir.Currency, gelir.Amount)
			}
		}
	}

	return report, nil
}

// Companies unikal xarici şirkət adlarını sıralanmış qaytarır.
func (s *OrderService) Companies(ctx context.Context) ([]string, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	companies := make([]string, 0)
	for i := range orders {
		name := orders[i].XariciSirket
		if name == "" {
			continue
		}
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			companies = append(companies, name)
		}
	}
	sort.Strings(companies)
	return companies, nil
}

// CompanyReport bir şirkətin sifarişlərini gəlir və ümumi ödəniş statusu ilə,
// üstəgəl yekun cəmlərlə qaytarır.
func (s *OrderService) CompanyReport(ctx context.Context, company string) (dto.CompanyReport, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return dto.CompanyReport{}, err
	}

	report := dto.CompanyReport{
		Orders: make([]dto.OrderResponse, 0),
		Summary: dto.CompanySummary{
			TotalGelir: s.newCurrencyTotals(),
			TotalDebt:  s.newCurrencyTotals(),
		},
	}

	for i := range orders {
		order := &orders[i]
		if order.XariciSirket != company {
			continue
		}

		gelir := CalculateGelir(order)
		report.Summary.TotalOrders++
		if gelir.Note == "" {
			addToBucket(report.Summary.TotalGelir, gelir.Currency, gelir.Amount)
		}
		if isDebt(order) && order.Satish != nil {
			addToBucket(report.Summary.TotalDebt, order.Satish.Currency, order.Satish.Amount)
		}

		resp := s.withGelir(*order)
		resp.OverallPaymentStatus = CalculateOverallPaymentStatus(order.PaymentDetails)
		report.Orders = append(report.Orders, resp)
	}

	return report, nil
}

// isDebt: xarici şirkətə bağlı və açıq şəkildə ödənilməmiş sifariş borcdur.
func isDebt(order *models.Order) bool {
	return order.XariciSirket != "" && order.PaymentStatus != constants.PaymentStatusPaid
}

// Debts borc siyahısını qaytarır; filter verilibsə şirkət adına registrdən
// asılı olmayan substring uyğunluğu tətbiq olunur. Filter heç nə tapmasa
// yaxın şirkət adı təklif edilir.
func (s *OrderService) Debts(ctx context.Context, companyFilter string) ([]dto.OrderResponse, string, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, "", err
	}

	debts := make([]dto.OrderResponse, 0)
	for i := range orders {
		order := &orders[i]
		if !isDebt(order) {
			continue
		}
		if companyFilter != "" && !containsNormalized(order.XariciSirket, companyFilter) {
			continue
		}
		debts = append(debts, s.withGelir(*order))
	}

	suggestion := ""
	if companyFilter != "" && len(debts) == 0 {
		companies, err := s.Companies(ctx)
		if err == nil {
			suggestion = SuggestCompany(companyFilter, companies)
		}
	}

	return debts, suggestion, nil
}

// UpcomingCheckinProblems [bu gün, bu gün+3 gün] (UTC, hər iki uc daxil)
// pəncərəsindəki girişləri yoxlayır: otel məlumatı natamamdırsa və ya
// sifarişdə sürücü məlumatı yoxdursa hər problemli otel üçün bir bildiriş
// yaranır.
func (s *OrderService) UpcomingCheckinProblems(ctx context.Context, now time.Time) ([]dto.CheckinProblem, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	today := now.UTC().Truncate(24 * time.Hour)
	windowEnd := today.AddDate(0, 0, constants.CheckinWindowDays)

	problems := make([]dto.CheckinProblem, 0)
	for i := range orders {
		order := &orders[i]
		for _, hotel := range order.Hotels {
			if hotel.GirisTarixi == "" {
				continue
			}
			checkIn, err := time.Parse("2006-01-02", hotel.GirisTarixi)
			if err != nil {
				continue
			}
			if checkIn.Before(today) || checkIn.After(windowEnd) {
				continue
			}

			var messages []string
			if hotel.OtelAdi == "" || hotel.CixisTarixi == "" {
				messages = append(messages, "Otel məlumatları natamamdır")
			}
			if order.Transport == nil || order.Transport.SurucuMelumatlari == "" {
				messages = append(messages, "Transport məlumatı yoxdur")
			}
			if len(messages) == 0 {
				continue
			}

			problems = append(problems, dto.CheckinProblem{
				SatisNo:     order.SatisNo,
				Turist:      order.PrimaryTourist(),
				GirisTarixi: checkIn.Format("02.01.2006"),
				Problem:     strings.Join(messages, ". ") + ".",
			})
		}
	}
	return problems, nil
}
