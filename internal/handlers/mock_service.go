package handlers

import (
	"context"
	"net/http"
	"time"

	"gas_delivery/internal/models"
	"gas_delivery/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginToken string
	loginUser  *models.User
	loginErr   error
	parseIdent service.Identity
	parseErr   error
	ttl        time.Duration

	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
}

func (m *mockAuth) Login(username, password string) (string, *models.User, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginUser, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdent, m.parseErr
}

func (m *mockAuth) TokenTTL() time.Duration {
	if m.ttl > 0 {
		return m.ttl
	}
	return 8 * time.Hour
}

type mockCustomers struct {
	listResp   []models.Customer
	listErr    error
	getResp    *models.CustomerDetail
	getErr     error
	createID   int
	createErr  error
	lastSearch string
	lastGetID  int
	lastCreate service.CustomerParams
}

func (m *mockCustomers) List(ctx context.Context, search string) ([]models.Customer, error) {
	m.lastSearch = search
	return m.listResp, m.listErr
}

func (m *mockCustomers) Get(ctx context.Context, id int) (*models.CustomerDetail, error) {
	m.lastGetID = id
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResp, nil
}

func (m *mockCustomers) Create(ctx context.Context, p service.CustomerParams) (int, error) {
	m.lastCreate = p
	return m.createID, m.createErr
}

type mockWithdrawals struct {
	createID   int
	createErr  error
	listResp   []models.WithdrawalRecord
	listErr    error
	lastCreate service.WithdrawalParams
	lastFilter service.WithdrawalFilter
}

func (m *mockWithdrawals) Create(ctx context.Context, p service.WithdrawalParams) (int, error) {
	m.lastCreate = p
	return m.createID, m.createErr
}

func (m *mockWithdrawals) List(ctx context.Context, f service.WithdrawalFilter) ([]models.WithdrawalRecord, error) {
	m.lastFilter = f
	return m.listResp, m.listErr
}

type mockInventory struct {
	current models.InventoryEntry
	history []models.InventoryEntry
	added   models.InventoryEntry
	err     error
	lastAdd service.InventoryParams
}

func (m *mockInventory) Current(ctx context.Context) (models.InventoryEntry, error) {
	return m.current, m.err
}

func (m *mockInventory) History(ctx context.Context) ([]models.InventoryEntry, error) {
	return m.history, m.err
}

func (m *mockInventory) Add(ctx context.Context, p service.InventoryParams) (models.InventoryEntry, error) {
	m.lastAdd = p
	return m.added, m.err
}

type mockStats struct {
	stats models.DashboardStats
	err   error
}

func (m *mockStats) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	return m.stats, m.err
}

// ---- Test helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, []string{"http://localhost:3000"})
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}
