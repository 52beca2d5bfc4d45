package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/delivery/httpapi/handlers"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/delivery/httpapi/middleware"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	session *domain.Session
}

func (s *stubVerifier) Verify(token string) (*domain.Session, error) {
	return s.session, nil
}

type stubLedger struct{}

func (s *stubLedger) GetTransactionsForUser(userID uint64) (*domain.LedgerResult, error) {
	return &domain.LedgerResult{}, nil
}

func (s *stubLedger) GetTransactionsPlatformWide(page, limit int) (*domain.LedgerResult, error) {
	return &domain.LedgerResult{}, nil
}

func (s *stubLedger) UpdateStatus(id domain.TransactionID, status string) error { return nil }
func (s *stubLedger) AttachTxHash(id domain.TransactionID, hash string) error   { return nil }
func (s *stubLedger) DeleteTransaction(id domain.TransactionID) error           { return nil }

type stubAnalytics struct{}

func (s *stubAnalytics) ComputePeriodStats(from, to time.Time, granularity domain.BucketGranularity) (*domain.PeriodStats, error) {
	return &domain.PeriodStats{}, nil
}

func (s *stubAnalytics) ComputeYearToDateStats() (*domain.YearToDateStats, error) {
	return &domain.YearToDateStats{}, nil
}

func (s *stubAnalytics) ComputeContractorAttribution() ([]*domain.ContractorAttribution, error) {
	return nil, nil
}

type stubContractors struct{}

func (s *stubContractors) CreateContractor(name, email string, commissionRate float64) (*domain.Contractor, error) {
	return &domain.Contractor{Name: name}, nil
}

func (s *stubContractors) GetContractors() ([]*domain.Contractor, error) {
	return nil, nil
}

func newRouterForSession(session *domain.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(&stubVerifier{session: session})
	return NewRouter(
		auth,
		handlers.NewTransactionHandler(&stubLedger{}),
		handlers.NewAnalyticsHandler(&stubAnalytics{}),
		handlers.NewContractorHandler(&stubContractors{}),
	)
}

func routeStatus(r *gin.Engine, method, path string) int {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRouteAccessByRole(t *testing.T) {
	adminSession := &domain.Session{UserID: 1, IsAdmin: true}
	employeeSession := &domain.Session{UserID: 2, IsEmployee: true}
	clientSession := &domain.Session{UserID: 3}

	testCases := []struct {
		name     string
		method   string
		path     string
		admin    int
		employee int
		client   int
	}{
		{
			name:   "own ledger",
			method: http.MethodGet, path: "/api/transactions",
			admin: http.StatusOK, employee: http.StatusOK, client: http.StatusOK,
		},
		{
			name:   "client ledger open to employees",
			method: http.MethodGet, path: "/api/admin/client/1/transactions",
			admin: http.StatusOK, employee: http.StatusOK, client: http.StatusForbidden,
		},
		{
			name:   "platform ledger admin route",
			method: http.MethodGet, path: "/api/admin/transactions",
			admin: http.StatusOK, employee: http.StatusForbidden, client: http.StatusForbidden,
		},
		{
			name:   "platform ledger employee route",
			method: http.MethodGet, path: "/api/employee/transactions",
			admin: http.StatusOK, employee: http.StatusOK, client: http.StatusForbidden,
		},
		{
			name:   "analytics",
			method: http.MethodGet, path: "/api/admin/analytics",
			admin: http.StatusOK, employee: http.StatusForbidden, client: http.StatusForbidden,
		},
		{
			name:   "contractors list",
			method: http.MethodGet, path: "/api/admin/contractors",
			admin: http.StatusOK, employee: http.StatusForbidden, client: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.admin, routeStatus(newRouterForSession(adminSession), tc.method, tc.path), "admin")
			assert.Equal(t, tc.employee, routeStatus(newRouterForSession(employeeSession), tc.method, tc.path), "employee")
			assert.Equal(t, tc.client, routeStatus(newRouterForSession(clientSession), tc.method, tc.path), "client")
		})
	}
}

func TestHealthzIsPublic(t *testing.T) {
	r := newRouterForSession(&domain.Session{UserID: 1})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
