package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goqerti/yeni/config"
	"github.com/Goqerti/yeni/constants"
	"github.com/Goqerti/yeni/models"
	"github.com/Goqerti/yeni/response"
	"github.com/Goqerti/yeni/services"
	"github.com/Goqerti/yeni/services/logger"
)

type stubStore struct {
	orders      []models.Order
	permissions map[string]models.PermissionSet
}

func (s *stubStore) GetAll(ctx context.Context) ([]models.Order, error) {
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *stubStore) SaveAll(ctx context.Context, orders []models.Order) error {
	s.orders = make([]models.Order, len(orders))
	copy(s.orders, orders)
	return nil
}

func (s *stubStore) GetPermissions(ctx context.Context) (map[string]models.PermissionSet, error) {
	return s.permissions, nil
}

type stubNotifier struct{}

func (stubNotifier) SendLog(string)           {}
func (stubNotifier) SendSimpleMessage(string) {}
func (stubNotifier) FormatLog(actor models.Actor, action string) string {
	return action
}
func (stubNotifier) SendBackup(string, []byte) {}

type stubBroadcast struct{}

func (stubBroadcast) SendMessage(string) error { return nil }

type stubAudit struct{}

func (stubAudit) LogAction(models.Actor, string, string, interface{}) {}

func setupRouter(orders []models.Order, actor *models.Actor) (*gin.Engine, *stubStore) {
	gin.SetMode(gin.TestMode)

	st := &stubStore{orders: orders, permissions: map[string]models.PermissionSet{}}
	svc := services.NewOrderService(services.OrderServiceOptions{
		Store:     st,
		Telegram:  stubNotifier{},
		Broadcast: stubBroadcast{},
		Audit:     stubAudit{},
		Logger:    logger.NewNop(),
		Config:    config.Config{Currencies: []string{"AZN", "USD", "EUR"}},
	})
	ctrl := NewOrderController(svc, logger.NewNop())

	router := gin.New()
	if actor != nil {
		router.Use(func(c *gin.Context) {
			c.Set("actor", *actor)
			c.Next()
		})
	}

	router.GET("/orders", ctrl.GetOrders)
	router.POST("/orders", ctrl.CreateOrder)
	router.PUT("/orders/:satisNo", ctrl.UpdateOrder)
	router.DELETE("/orders/:satisNo", ctrl.DeleteOrder)
	router.GET("/debts", ctrl.GetDebts)

	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetOrdersEnvelope(t *testing.T) {
	router, _ := setupRouter([]models.Order{
		{SatisNo: "1695", Tourists: []string{"Anar Məmmədov"}},
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/orders", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, 1, resp.Code)
	assert.Equal(t, "Uğurlu", resp.Mess)
	assert.NotNil(t, resp.Data)
}

func TestCreateOrderWithoutActorUnauthorized(t *testing.T) {
	router, st := setupRouter(nil, nil)

	w := doJSON(t, router, http.MethodPost, "/orders", gin.H{"tourists": []string{"Anar"}})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, st.orders)
}

func TestCreateOrderHappyPath(t *testing.T) {
	actor := models.Actor{Username: "r.quliyev", DisplayName: "Rəşad Quliyev", Role: models.RoleOwner}
	router, st := setupRouter(nil, &actor)

	w := doJSON(t, router, http.MethodPost, "/orders", gin.H{
		"tourists": []string{"Anar Məmmədov"},
		"satish":   gin.H{"amount": 1200, "currency": "AZN"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, st.orders, 1)
	assert.Equal(t, "1695", st.orders[0].SatisNo)
}

func TestCreateOrderValidationFails(t *testing.T) {
	actor := models.Actor{Username: "r.quliyev", Role: models.RoleOwner}
	router, st := setupRouter(nil, &actor)

	w := doJSON(t, router, http.MethodPost, "/orders", gin.H{"tourists": []string{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.orders)
}

func TestUpdateOrderForbidden(t *testing.T) {
	actor := models.Actor{Username: "e.hesenova", Role: models.RoleUser}
	router, _ := setupRouter([]models.Order{
		{SatisNo: "1695", Tourists: []string{"Anar"}},
	}, &actor)

	w := doJSON(t, router, http.MethodPut, "/orders/1695", gin.H{"status": "Təsdiqlənib"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Sifarişi redaktə etməyə icazəniz yoxdur.", resp.Mess)
}

func TestUpdateOrderNotFound(t *testing.T) {
	actor := models.Actor{Username: "r.quliyev", Role: models.RoleOwner}
	router, _ := setupRouter(nil, &actor)

	w := doJSON(t, router, http.MethodPut, "/orders/9999", gin.H{"status": "Təsdiqlənib"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	actor := models.Actor{Username: "r.quliyev", Role: models.RoleOwner}
	router, st := setupRouter([]models.Order{
		{SatisNo: "1695", Tourists: []string{"Anar"}},
	}, &actor)

	w := doJSON(t, router, http.MethodDelete, "/orders/1695", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, st.orders)
}

func TestGetDebtsWithSuggestion(t *testing.T) {
	router, _ := setupRouter([]models.Order{
		{SatisNo: "1695", Tourists: []string{"A"}, XariciSirket: "Baku Travel", PaymentStatus: constants.PaymentStatusUnpaid},
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/debts?company=baku+travl", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Baku Travel", data["suggestion"])
}
