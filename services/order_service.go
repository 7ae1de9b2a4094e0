package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Goqerti/yeni/builders"
	"github.com/Goqerti/yeni/config"
	"github.com/Goqerti/yeni/constants"
	"github.com/Goqerti/yeni/dto"
	"github.com/Goqerti/yeni/errors"
	"github.com/Goqerti/yeni/models"
	"github.com/Goqerti/yeni/services/logger"
	"github.com/Goqerti/yeni/services/notification"
	"github.com/Goqerti/yeni/store"
	"github.com/Goqerti/yeni/validator"
)

const (
	ordersCacheKey = "orders:all"
	ordersCacheTTL = 10 * time.Minute
)

// OrderServiceOptions sifariş servisinin asılılıqları.
type OrderServiceOptions struct {
	Store     store.OrderStore
	Redis     *redis.Client
	Telegram  OperatorNotifier
	Broadcast notification.Service
	Audit     AuditSink
	Logger    logger.Logger
	Config    config.Config
}

// OrderService sifarişlər üzərində bütün əməliyyatları aparan orkestratordur.
// Heç bir qlobal sessiya vəziyyəti yoxdur: əməliyyatı edən istifadəçi hər
// metoda models.Actor kimi açıq ötürülür.
type OrderService struct {
	store     store.OrderStore
	rdb       *redis.Client
	telegram  OperatorNotifier
	broadcast notification.Service
	audit     AuditSink
	log       logger.Logger
	cfg       config.Config
}

func NewOrderService(opts OrderServiceOptions) *OrderService {
	return &OrderService{
		store:     opts.Store,
		rdb:       opts.Redis,
		telegram:  opts.Telegram,
		broadcast: opts.Broadcast,
		audit:     opts.Audit,
		log:       opts.Logger,
		cfg:       opts.Config,
	}
}

// loadOrders bütün sifarişləri (varsa cache-dən) oxuyur və hər birini
// normallaşdırır; köhnə sxemli sifarişlər bu nöqtədə miqrasiya olunur.
func (s *OrderService) loadOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, ordersCacheKey, &orders); err != nil {
			s.log.Error("orders cache oxuna bilmədi: %v", err)
		}
	}

	if len(orders) == 0 {
		var err error
		orders, err = s.store.GetAll(ctx)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeStore, "Sifarişlər oxuna bilmədi", err)
		}
		if s.rdb != nil && len(orders) > 0 {
			if err := SetToRedis(ctx, s.rdb, ordersCacheKey, orders, ordersCacheTTL); err != nil {
				s.log.Error("orders cache yazıla bilmədi: %v", err)
			}
		}
	}

	for i := range orders {
		EnsurePaymentDetails(&orders[i])
	}
	return orders, nil
}

// saveOrders kolleksiyanı bütövlükdə yazır və cache-i atır. Yazı həmişə
// əməliyyatın son addımıdır: validasiya və hesablamalar bundan əvvəl bitir.
func (s *OrderService) saveOrders(ctx context.Context, orders []models.Order) error {
	if err := s.store.SaveAll(ctx, orders); err != nil {
		return errors.NewAppError(errors.ErrCodeStore, "Sifarişlər yadda saxlanıla bilmədi", err)
	}
	if s.rdb != nil {
		if err := DeleteFromRedis(ctx, s.rdb, ordersCacheKey); err != nil {
			s.log.Error("orders cache silinə bilmədi: %v", err)
		}
	}
	return nil
}

func (s *OrderService) permissionsFor(ctx context.Context, actor models.Actor) (models.PermissionSet, error) {
	permissions, err := s.store.GetPermissions(ctx)
	if err != nil {
		return models.PermissionSet{}, errors.NewAppError(errors.ErrCodeStore, "İcazələr oxuna bilmədi", err)
	}
	return permissions[actor.Username], nil
}

// nextSatisNo mövcud nömrələrin maksimumundan bir sonrakı nömrəni verir.
// Rəqəm olmayan nömrələr sayılmır; boş bazada da nömrə tarixi başlanğıc
// nöqtəsinin altına düşmür.
func nextSatisNo(orders []models.Order) string {
	max := constants.SatisNoFloor
	for i := range orders {
		if n, err := strconv.Atoi(orders[i].SatisNo); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

func cloneOrder(order *models.Order) *models.Order {
	data, err := json.Marshal(order)
	if err != nil {
		return &models.Order{}
	}
	var copied models.Order
	if err := json.Unmarshal(data, &copied); err != nil {
		return &models.Order{}
	}
	return &copied
}

func (s *OrderService) withGelir(order models.Order) dto.OrderResponse {
	gelir := CalculateGelir(&order)
	return dto.OrderResponse{Order: order, Gelir: &gelir}
}

// GetAll bütün sifarişləri gəlirlə birlikdə qaytarır.
func (s *OrderService) GetAll(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, s.withGelir(order))
	}
	return result, nil
}

// Create yeni sifariş yaradır, nömrə verir və yan təsirləri işə salır.
func (s *OrderService) Create(ctx context.Context, actor models.Actor, requestID string, req dto.CreateOrderRequest) (dto.OrderResponse, error) {
	if err := validator.ValidateTourists(req.Tourists); err != nil {
		return dto.OrderResponse{}, err
	}
	if err := validator.ValidateCostPair(req.Alish); err != nil {
		return dto.OrderResponse{}, err
	}
	if err := validator.ValidateCostPair(req.Satish); err != nil {
		return dto.OrderResponse{}, err
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return dto.OrderResponse{}, err
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = constants.PaymentStatusUnpaid
	}

	order := builders.NewOrderBuilder().
		WithSatisNo(nextSatisNo(orders)).
		WithTourists(req.Tourists).
		WithAlish(req.Alish).
		WithSatish(req.Satish).
		WithXariciSirket(req.XariciSirket).
		WithRezNomresi(req.RezNomresi).
		WithStatus(req.Status).
		WithQeyd(req.Qeyd).
		WithHotels(req.Hotels).
		WithTransport(req.Transport).
		WithGuests(req.AdultGuests, req.ChildGuests).
		WithPaymentStatus(paymentStatus).
		WithPaymentDueDate(req.PaymentDueDate).
		WithDetailedCosts(req.DetailedCosts).
		WithCreator(actor.Username, time.Now().UTC().Format(time.RFC3339)).
		Build()

	EnsurePaymentDetails(order)

	orders = append(orders, *order)
	if err := s.saveOrders(ctx, orders); err != nil {
		return dto.OrderResponse{}, err
	}

	s.logConfirmationLinks(actor, requestID, nil, order)

	gelir := CalculateGelir(order)
	if gelir.Note == "" && gelir.Amount < 0 {
		s.telegram.SendSimpleMessage(fmt.Sprintf(
			"🔴 **DİQQƏT: MƏNFİ GƏLİR!**\nİstifadəçi *%s* tərəfindən yaradılan №%s sifariş mənfi gəlirlə (%.2f %s) yadda saxlanıldı!",
			actor.DisplayName, order.SatisNo, gelir.Amount, gelir.Currency))
	}
	if order.Satish != nil && order.Satish.Amount >= constants.LargeSaleThreshold {
		s.telegram.SendSimpleMessage(fmt.Sprintf(
			"🎉 **BÖYÜK SATIŞ!**\n*%s*, %.2f %s məbləğində yeni sifariş (№%s) yaratdı!",
			actor.DisplayName, order.Satish.Amount, order.Satish.Currency, order.SatisNo))
	}

	primaryTourist := order.PrimaryTourist()
	action := fmt.Sprintf("yeni sifariş (№%s) yaratdı: <b>%s</b>", order.SatisNo, primaryTourist)
	s.telegram.SendLog(s.telegram.FormatLog(actor, action))
	s.audit.LogAction(actor, requestID, constants.ActionCreateOrder, map[string]string{
		"satisNo": order.SatisNo,
		"tourist": primaryTourist,
	})
	s.notifyOperators(actor, order.SatisNo, "yeni sifariş yaradıldı", "")

	resp := s.withGelir(*order)
	resp.Milestone = milestoneFor(orders, actor.Username)
	return resp, nil
}

func milestoneFor(orders []models.Order, username string) *dto.Milestone {
	count := 0
	for i := range orders {
		if orders[i].CreatedBy == username {
			count++
		}
	}
	for _, milestone := range constants.OrderMilestones {
		if count == milestone {
			return &dto.Milestone{Count: count}
		}
	}
	return nil
}

// Update patch-i saxlanılan sifarişin üstünə tətbiq edir. Maliyyə sahələri
// icazəsiz istifadəçidə sorğudan atılır, qalan dəyişikliklər keçərli qalır.
func (s *OrderService) Update(ctx context.Context, actor models.Actor, requestID, satisNo string, patch dto.OrderUpdate) error {
	permissions, err := s.permissionsFor(ctx, actor)
	if err != nil {
		return err
	}
	if !actor.IsOwner() && !permissions.CanEditOrder {
		return errors.NewAppError(errors.ErrCodeForbidden, "Sifarişi redaktə etməyə icazəniz yoxdur.", nil)
	}

	if patch.Tourists != nil {
		if err := validator.ValidateTourists(*patch.Tourists); err != nil {
			return err
		}
	}
	if err := validator.ValidateCostPair(patch.Alish); err != nil {
		return err
	}
	if err := validator.ValidateCostPair(patch.Satish); err != nil {
		return err
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return err
	}

	index := findOrder(orders, satisNo)
	if index == -1 {
		return errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("Sifariş (%s) tapılmadı.", satisNo), nil)
	}

	original := cloneOrder(&orders[index])
	order := &orders[index]
	EnsurePaymentDetails(order)

	// Payload-dakı otel dəyişiklikləri merge-dən əvvəl mövcud ödəniş
	// sətirlərinə calanır: qalan otellərin paid bayraqları itirilmir.
	if patch.Hotels != nil {
		order.PaymentDetails.Hotels = reconcileHotelPayments(*patch.Hotels, order.PaymentDetails.Hotels)
	}

	if !actor.IsOwner() && !permissions.CanEditFinancials {
		patch.Alish = nil
		patch.Satish = nil
		patch.DetailedCosts = nil
	}

	applyOrderUpdate(order, &patch)
	order.SatisNo = satisNo

	if err := s.saveOrders(ctx, orders); err != nil {
		return err
	}

	s.logConfirmationLinks(actor, requestID, original, order)

	gelir := CalculateGelir(order)
	if gelir.Note == "" && gelir.Amount < 0 {
		s.telegram.SendSimpleMessage(fmt.Sprintf(
			"🔴 **DİQQƏT: MƏNFİ GƏLİR!**\nİstifadəçi *%s* tərəfindən düzəliş edilən №%s sifarişin gəliri mənfidir (%.2f %s)!",
			actor.DisplayName, order.SatisNo, gelir.Amount, gelir.Currency))
	}

	changes := FormatChanges(original, order)
	action := fmt.Sprintf("sifarişə (№%s) düzəliş etdi.", satisNo)
	if changes != "" {
		action += "\n" + changes
	}
	s.telegram.SendLog(s.telegram.FormatLog(actor, action))
	s.audit.LogAction(actor, requestID, constants.ActionUpdateOrder, map[string]string{
		"satisNo": satisNo,
		"changes": changes,
	})
	s.notifyOperators(actor, satisNo, "sifarişə düzəliş edildi", changes)

	return nil
}

// Delete sifarişi kolleksiyadan çıxarır; geri qaytarma yoxdur.
func (s *OrderService) Delete(ctx context.Context, actor models.Actor, requestID, satisNo string) error {
	permissions, err := s.permissionsFor(ctx, actor)
	if err != nil {
		return err
	}
	if !actor.IsOwner() && !permissions.CanDeleteOrder {
		return errors.NewAppError(errors.ErrCodeForbidden, "Bu əməliyyatı etməyə icazəniz yoxdur.", nil)
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return err
	}

	index := findOrder(orders, satisNo)
	if index == -1 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Sifariş tapılmadı.", nil)
	}

	deleted := orders[index]
	orders = append(orders[:index], orders[index+1:]...)
	if err := s.saveOrders(ctx, orders); err != nil {
		return err
	}

	s.telegram.SendLog(s.telegram.FormatLog(actor, fmt.Sprintf("sifarişi (№%s) sildi.", deleted.SatisNo)))
	s.audit.LogAction(actor, requestID, constants.ActionDeleteOrder, map[string]string{
		"satisNo": deleted.SatisNo,
		"tourist": deleted.PrimaryTourist(),
	})
	s.notifyOperators(actor, deleted.SatisNo, "sifariş silindi", "")

	return nil
}

// UpdateNote yalnız qeyd sahəsini dəyişir.
func (s *OrderService) UpdateNote(ctx context.Context, actor models.Actor, requestID, satisNo, qeyd string) error {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return err
	}

	index := findOrder(orders, satisNo)
	if index == -1 {
		return errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("Sifariş (%s) tapılmadı.", satisNo), nil)
	}

	originalNote := orders[index].Qeyd
	orders[index].Qeyd = qeyd
	if err := s.saveOrders(ctx, orders); err != nil {
		return err
	}

	s.audit.LogAction(actor, requestID, constants.ActionUpdateNote, map[string]string{
		"satisNo": satisNo,
		"changes": fmt.Sprintf("Qeyd yeniləndi: '%s' -> '%s'", originalNote, qeyd),
	})

	return nil
}

// SearchByRezNomresi rezervasiya nömrəsinə görə sifariş axtarır. Dəqiq
// uyğunluq tapılmadıqda yaxın nömrə təklifi ilə NotFound qaytarılır.
func (s *OrderService) SearchByRezNomresi(ctx context.Context, rezNomresi string) (dto.OrderResponse, string, error) {
	if strings.TrimSpace(rezNomresi) == "" {
		return dto.OrderResponse{}, "", errors.NewAppError(errors.ErrCodeValidation, "Rezervasiya nömrəsi daxil edilməyib.", nil)
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return dto.OrderResponse{}, "", err
	}

	for i := range orders {
		if strings.EqualFold(orders[i].RezNomresi, rezNomresi) {
			return s.withGelir(orders[i]), "", nil
		}
	}

	candidates := make([]string, 0, len(orders))
	for i := range orders {
		candidates = append(candidates, orders[i].RezNomresi)
	}
	suggestion, _ := closestRezNomresi(rezNomresi, candidates)

	return dto.OrderResponse{}, suggestion,
		errors.NewAppError(errors.ErrCodeNotFound, "Bu rezervasiya nömrəsi ilə sifariş tapılmadı.", nil)
}

func findOrder(orders []models.Order, satisNo string) int {
	for i := range orders {
		if orders[i].SatisNo == satisNo {
			return i
		}
	}
	return -1
}

// applyOrderUpdate patch-in dolu sahələrini sifarişin üstünə yazır; nil sahə
// toxunulmaz qalır.
func applyOrderUpdate(order *models.Order, patch *dto.OrderUpdate) {
	if patch.Tourists != nil {
		order.Tourists = *patch.Tourists
	}
	if patch.Alish != nil {
		order.Alish = patch.Alish
	}
	if patch.Satish != nil {
		order.Satish = patch.Satish
	}
	if patch.XariciSirket != nil {
		order.XariciSirket = *patch.XariciSirket
	}
	if patch.RezNomresi != nil {
		order.RezNomresi = *patch.RezNomresi
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.Qeyd != nil {
		order.Qeyd = *patch.Qeyd
	}
	if patch.Hotels != nil {
		order.Hotels = *patch.Hotels
	}
	if patch.Transport != nil {
		order.Transport = patch.Transport
	}
	if patch.AdultGuests != nil {
		order.AdultGuests = *patch.AdultGuests
	}
	if patch.ChildGuests != nil {
		order.ChildGuests = *patch.ChildGuests
	}
	if patch.PaymentStatus != nil {
		order.PaymentStatus = *patch.PaymentStatus
	}
	if patch.PaymentDueDate != nil {
		order.PaymentDueDate = *patch.PaymentDueDate
	}
	if patch.DetailedCosts != nil {
		order.DetailedCosts = *patch.DetailedCosts
	}
	if patch.PaymentDetails != nil {
		order.PaymentDetails = patch.PaymentDetails
	}
}

// logConfirmationLinks otel sətrinə yeni və ya dəyişmiş confirmation yolu
// gəldikdə audit izi yazır.
func (s *OrderService) logConfirmationLinks(actor models.Actor, requestID string, original, updated *models.Order) {
	for _, hotel := range updated.Hotels {
		if hotel.ConfirmationPath == "" {
			continue
		}
		changed := true
		if original != nil {
			for _, prev := range original.Hotels {
				if prev.OtelAdi == hotel.OtelAdi && prev.ConfirmationPath == hotel.ConfirmationPath {
					changed = false
					break
				}
			}
		}
		if changed {
			s.audit.LogAction(actor, requestID, constants.ActionConfirmation, map[string]string{
				"satisNo": updated.SatisNo,
				"hotel":   hotel.OtelAdi,
				"path":    hotel.ConfirmationPath,
			})
		}
	}
}

func (s *OrderService) notifyOperators(actor models.Actor, satisNo, action, changes string) {
	msg := notification.NewChangeMessageBuilder(actor.DisplayName, satisNo, action).
		WithChanges(changes).
		Build()
	if err := s.broadcast.SendMessage(msg); err != nil {
		s.log.Error("operator bildirişi göndərilə bilmədi: %v", err)
	}
}
