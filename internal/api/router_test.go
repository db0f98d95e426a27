package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/lumelec/backoffice/internal/api/v1"
	"github.com/lumelec/backoffice/internal/config"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/notification/publisher"
	"github.com/lumelec/backoffice/internal/repository/memory"
	"github.com/lumelec/backoffice/internal/sentry"
	"github.com/lumelec/backoffice/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()

	params := service.NewServiceParams(
		log,
		cfg,
		memory.NewProjectStore(memory.SeedProjects()...),
		memory.NewClientStore(memory.SeedClients()...),
		memory.NewCatalogStore(memory.SeedServices()...),
		memory.NewInvoiceStore(memory.SeedInvoices()...),
		memory.NewSettingsStore(memory.SeedSettings()),
		publisher.NewNoopPublisher(),
	)

	s.router = NewRouter(Handlers{
		Health:    v1.NewHealthHandler(),
		Project:   v1.NewProjectHandler(service.NewProjectService(params), log),
		Client:    v1.NewClientHandler(service.NewClientService(params), log),
		Catalog:   v1.NewCatalogHandler(service.NewCatalogService(params), log),
		Invoice:   v1.NewInvoiceHandler(service.NewInvoiceService(params), log),
		Settings:  v1.NewSettingsHandler(service.NewSettingsService(params), log),
		Dashboard: v1.NewDashboardHandler(service.NewDashboardService(params), log),
	}, cfg, log, sentry.NewSentryService(cfg, log))
}

func (s *RouterSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func (s *RouterSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (s *RouterSuite) TestListProjectsIsBareArray() {
	w := s.do(http.MethodGet, "/api/projects", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var projects []map[string]any
	s.decode(w, &projects)
	s.Len(projects, 3)
	s.Equal(float64(1), projects[0]["id"])
	s.Equal("2023-06-30", projects[0]["endDate"])
	s.Nil(projects[1]["endDate"])
}

func (s *RouterSuite) TestCreateInvoiceAndJoin() {
	w := s.do(http.MethodPost, "/api/invoices",
		`{"invoiceNumber":"INV-003","clientId":1,"dateIssued":"2024-01-01","dueDate":"2024-02-01","amount":1000,"status":"Pending"}`)
	s.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]any
	s.decode(w, &created)
	s.Equal(float64(3), created["id"])
	s.Equal(float64(1000), created["amount"])
	s.Equal("Client Industrie X", created["clientName"])

	w = s.do(http.MethodGet, "/api/invoices", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var invoices []map[string]any
	s.decode(w, &invoices)
	s.Require().Len(invoices, 3)
	s.Equal("INV-003", invoices[2]["invoiceNumber"])
	s.Equal("Client Industrie X", invoices[2]["clientName"])
}

func (s *RouterSuite) TestNegativePriceIs400() {
	w := s.do(http.MethodPut, "/api/services/1", `{"price":-5}`)
	s.Require().Equal(http.StatusBadRequest, w.Code)

	var body errorBody
	s.decode(w, &body)
	s.False(body.Success)
	s.Equal("Price must be a non-negative number.", body.Error.Message)

	w = s.do(http.MethodGet, "/api/services/1", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var svc map[string]any
	s.decode(w, &svc)
	s.Equal(float64(500), svc["price"])
}

func (s *RouterSuite) TestMissingFields() {
	w := s.do(http.MethodPost, "/api/services", `{"description":"sans nom"}`)
	s.Require().Equal(http.StatusBadRequest, w.Code)

	var body errorBody
	s.decode(w, &body)
	s.Equal("Missing required fields: name, price.", body.Error.Message)
	s.Contains(body.Error.Details, "name")
}

func (s *RouterSuite) TestIDErrors() {
	w := s.do(http.MethodGet, "/api/clients/abc", "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/clients/99", "")
	s.Require().Equal(http.StatusNotFound, w.Code)
	var body errorBody
	s.decode(w, &body)
	s.Equal("Client not found.", body.Error.Message)

	w = s.do(http.MethodDelete, "/api/invoices/99", "")
	s.Require().Equal(http.StatusNotFound, w.Code)
	s.decode(w, &body)
	s.Equal("Invoice not found or deletion failed.", body.Error.Message)

	w = s.do(http.MethodPut, "/api/projects/99", `{"name":"X"}`)
	s.Require().Equal(http.StatusNotFound, w.Code)
	s.decode(w, &body)
	s.Equal("Project not found or update failed.", body.Error.Message)
}

func (s *RouterSuite) TestDelete() {
	w := s.do(http.MethodDelete, "/api/projects/1", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"message":"Project deleted successfully."}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/projects/1", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestUpdateClearsNullableField() {
	w := s.do(http.MethodPut, "/api/clients/1", `{"phone":""}`)
	s.Require().Equal(http.StatusOK, w.Code)

	var c map[string]any
	s.decode(w, &c)
	s.Nil(c["phone"])
	s.Equal("jean.dupont@industrie-x.com", c["email"])
}

func (s *RouterSuite) TestMalformedBody() {
	w := s.do(http.MethodPut, "/api/projects/1", `{"name":`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/projects/1", `{"name":null}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestSettings() {
	w := s.do(http.MethodPut, "/api/settings", `{"defaultVatRate":-1}`)
	s.Require().Equal(http.StatusBadRequest, w.Code)
	var body errorBody
	s.decode(w, &body)
	s.Equal("Default VAT Rate must be a non-negative number.", body.Error.Message)

	w = s.do(http.MethodPut, "/api/settings", `{"theme":"dark","defaultVatRate":5.5}`)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/settings", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var st map[string]any
	s.decode(w, &st)
	s.Equal("dark", st["theme"])
	s.Equal(5.5, st["defaultVatRate"])
	s.Equal("Mon Entreprise Inc.", st["companyName"])
}

func (s *RouterSuite) TestQuotedNumbersAre400() {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		field  string
	}{
		{"service price", http.MethodPut, "/api/services/1", `{"price":"12"}`, "price"},
		{"new service price", http.MethodPost, "/api/services", `{"name":"Audit","price":"12"}`, "price"},
		{"invoice amount", http.MethodPost, "/api/invoices",
			`{"invoiceNumber":"INV-003","clientId":1,"dateIssued":"2024-01-01","dueDate":"2024-02-01","amount":"1000","status":"Pending"}`, "amount"},
		{"vat rate", http.MethodPut, "/api/settings", `{"defaultVatRate":"5.5"}`, "defaultVatRate"},
		{"boolean amount", http.MethodPut, "/api/invoices/1", `{"amount":true}`, "amount"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(tt.method, tt.path, tt.body)
			s.Require().Equal(http.StatusBadRequest, w.Code)

			var body errorBody
			s.decode(w, &body)
			s.Equal("Invalid field types.", body.Error.Message)
			s.Contains(body.Error.Details, tt.field)
		})
	}

	w := s.do(http.MethodGet, "/api/invoices", "")
	var invoices []map[string]any
	s.decode(w, &invoices)
	s.Len(invoices, 2)

	w = s.do(http.MethodGet, "/api/services/1", "")
	var svc map[string]any
	s.decode(w, &svc)
	s.Equal(float64(500), svc["price"])

	w = s.do(http.MethodGet, "/api/settings", "")
	var st map[string]any
	s.decode(w, &st)
	s.Equal(float64(20), st["defaultVatRate"])
}

func (s *RouterSuite) TestEmptyUpdateKeepsRecord() {
	for _, path := range []string{"/api/projects/1", "/api/clients/1", "/api/services/1", "/api/invoices/1"} {
		before := s.do(http.MethodGet, path, "")
		s.Require().Equal(http.StatusOK, before.Code)

		w := s.do(http.MethodPut, path, `{}`)
		s.Require().Equal(http.StatusOK, w.Code, path)
		s.JSONEq(before.Body.String(), w.Body.String(), path)
	}

	before := s.do(http.MethodGet, "/api/settings", "")
	w := s.do(http.MethodPut, "/api/settings", `{}`)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(before.Body.String(), w.Body.String())
}

func (s *RouterSuite) TestDashboard() {
	w := s.do(http.MethodGet, "/api/dashboard", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var d map[string]any
	s.decode(w, &d)
	s.Equal(float64(2), d["clients"])
	invoices := d["invoices"].(map[string]any)
	s.Equal(750.5, invoices["outstanding"])
}

func (s *RouterSuite) TestRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal("req-123", w.Header().Get("X-Request-ID"))

	w = s.do(http.MethodGet, "/health", "")
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func TestPanicBecomes500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := new(RouterSuite)
	s.SetT(t)
	s.SetupTest()
	s.router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "An unexpected error occurred", body.Error.Message)
}
