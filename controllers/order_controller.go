package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Goqerti/yeni/dto"
	apperrors "github.com/Goqerti/yeni/errors"
	"github.com/Goqerti/yeni/middleware"
	"github.com/Goqerti/yeni/models"
	"github.com/Goqerti/yeni/response"
	"github.com/Goqerti/yeni/services"
	"github.com/Goqerti/yeni/services/logger"
)

// OrderController sifariş endpointlərinin gin qatıdır.
type OrderController struct {
	svc *services.OrderService
	log logger.Logger
}

func NewOrderController(svc *services.OrderService, log logger.Logger) *OrderController {
	return &OrderController{svc: svc, log: log}
}

// handleServiceError servis xətasını müvafiq HTTP cavabına çevirir.
// Gözlənilməz xətalar loglanır və istifadəçiyə ümumi mesajla qayıdır.
func (ctrl *OrderController) handleServiceError(c *gin.Context, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField, apperrors.ErrCodeInvalidFormat:
			response.BadRequest(c, appErr.Message)
			return
		case apperrors.ErrCodeNotFound:
			response.NotFound(c, appErr.Message)
			return
		case apperrors.ErrCodeForbidden:
			response.Forbidden(c, appErr.Message)
			return
		}
	}
	ctrl.log.Error("sifariş əməliyyatı xətası: %v", err)
	response.ServerError(c)
}

func (ctrl *OrderController) actor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Unauthorized(c)
	}
	return actor, ok
}

// GetOrders bütün sifarişləri gəlirlə birlikdə qaytarır.
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctrl.svc.GetAll(c.Request.Context())
	if err != nil {
		ctrl.handleServiceError(c, err)
		return
	}
	response.Success(c, orders)
}

// CreateOrder yeni sifariş yaradır.
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	actor, ok := ctrl.actor(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Bütün turist adları daxil edilməlidir.")
		return
	}

	created, err := ctrl.svc.Create(c.Request.Context(), actor, middleware.RequestIDFromContext(c), req)
	if err != nil {
		ctrl.handleServiceError(c, err)
		return
	}
	response.Created(c, created)
}

// UpdateOrder mövcud sifarişə patch tətbiq edir.
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	actor, ok := ctrl.actor(c)
	if !ok {
		return
	}

	var patch dto.OrderUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "Sorğu düzgün deyil.")
		return
	}

	satisNo := c.Param("satisNo")
	if err := ctrl.svc.Update(c.Request.Context(), actor, middleware.RequestIDFromContext(c), satisNo, patch); err != nil {
		ctrl.handleServiceError(c, err)
		return
	}
	response.Message(c, "Sifariş uğurla yeniləndi.")
}

// DeleteOrder sifarişi silir.
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	actor, ok := ctrl.actor(c)
	if !ok {
		return
	}

	satisNo := c.Param("satisNo")
	if err := ctrl.svc.Delete(c.Request.Context(), actor, middleware.RequestIDFromContext(c), satisNo); err != nil {
		ctrl.handleServiceError(c, err)
		return
	}
	response.Message(c, "Sifariş uğurla silindi.")
}

// UpdateOrderNote yalnız qeyd sahəsini dəyişir.
func (ctrl *OrderController) UpdateOrderNote(c *gin.Context) {
	actor, ok := ctrl.actor(c)
	if !ok {
		return
	}

	var req dto.NoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Qeyd == nil {
		response.BadRequest(c, "Qeyd mətni təqdim edilməyib.")
		return
	}

	satisNo := c.Param("satisNo")
	if err := ctrl.svc.UpdateNote(c.Request.Context(), actor, middleware.RequestIDFromContext(c), satisNo, *req.Qeyd); err != nil {
		ctrl.handleServiceError(c, err)
		return
	}
	response.Message(c, "Qeyd uğurla yeniləndi.")
}

// SearchOrderByRezNo rezervasiya nömrəsinə görə axtarış.
func (ctrl *OrderController) SearchOrderByRezNo(c *gin.Context) {
	rezNomresi := c.Param("rezNomresi")

	order, suggestion, err := ctrl.svc.SearchByRezNomresi(c.Request.Context(), rezNomresi)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Code == apperrors.ErrCodeNotFound && suggestion != "" {
			response.NotFound(c, appErr.Message+" Bunu nəzərdə tutdunuz: "+suggestion)
			return
		}
		ctrl.handleServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// GetReservations otel qalma sətirlərinin siyahısı.
func (ctrl *OrderController) GetReservations(c *gin.Context) {
	reservations, err := ctrl.svc.Reservations(c.Request.Context())
	if err != nil {
		ctrl.handleServiceError(c, err)
		return
	}
	response.Success(c, reservations)
}

// GetReports qlobal maliyyə hesabatı.
func (ctrl *OrderController) GetReports(c *gin.Context) {
	report, err := ctrl.svc.Report(c.Request.Context())
	if err != nil {
		ctrl.handleServiceError(c, err)
		return
	}
	response.Success(c, report)
}

// GetOrdersByCompany ?company verilməyibsə şirkət siyahısını, verilibsə həmin
// şirkətin hesabatını qaytarır.
func (ctrl *OrderController) GetOrdersByCompany(c *gin.Context) {
	company := c.Query("company")

	if company == "" {
		companies, err := ctrl.svc.Companies(c.Request.Context())
		if err != nil {
			ctrl.handleServiceError(c, err)
			return
		}
		response.Success(c, companies)
		return
	}

	report, err := ctrl.svc.CompanyReport(c.Request.Context(), company)
	if err != nil {
		ctrl.handleServiceError(c, err)
		return
	}
	response.Success(c, report)
}

// GetDebts borc siyahısı; ?company ilə filtrlənə bilir.
func (ctrl *OrderController) GetDebts(c *gin.Context) {
	debts, suggestion, err := ctrl.svc.Debts(c.Request.Context(), c.Query("company"))
	if err != nil {
		ctrl.handleServiceError(c, err)
		return
	}

	if suggestion != "" {
		response.Success(c, gin.H{"debts": debts, "suggestion": suggestion})
		return
	}
	response.Success(c, debts)
}

// GetNotifications yaxınlaşan girişlər üzrə problem bildirişləri.
func (ctrl *OrderController) GetNotifications(c *gin.Context) {
	problems, err := ctrl.svc.UpcomingCheckinProblems(c.Request.Context(), time.Now())
	if err != nil {
		ctrl.handleServiceError(c, err)
		return
	}
	response.Success(c, problems)
}
