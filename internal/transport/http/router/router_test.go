package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eventplanner-api/internal/core/auth"
	"eventplanner-api/internal/repo/repotest"
	"eventplanner-api/internal/service"
	"eventplanner-api/internal/transport/http/handler"
)

type apiFixture struct {
	router *gin.Engine
	users  *repotest.Users
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &repotest.Users{}
	inquiries := &repotest.Inquiries{}
	feedbacks := &repotest.Feedbacks{}
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "eventplanner-api", TTL: time.Hour}

	h := Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(users, jwter)),
		Inquiry:  handler.NewInquiryHandler(service.NewInquiryService(inquiries)),
		Feedback: handler.NewFeedbackHandler(service.NewFeedbackService(feedbacks)),
		Admin:    handler.NewAdminHandler(service.NewDashboardService(users, inquiries, feedbacks)),
	}
	return &apiFixture{
		router: New(zap.NewNop(), jwter, users, "http://localhost:5173", h),
		users:  users,
	}
}

func (f *apiFixture) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var parsed map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	return w, parsed
}

func (f *apiFixture) bootstrapAdmin(t *testing.T) string {
	t.Helper()
	w, body := f.do(t, http.MethodPost, "/api/auth/register-first-admin",
		`{"name":"Admin","email":"admin@example.com","password":"s3cret"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (f *apiFixture) registerClient(t *testing.T, adminToken string) string {
	t.Helper()
	w, body := f.do(t, http.MethodPost, "/api/auth/register",
		`{"name":"Client","email":"client@example.com","password":"pw"}`, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

const validInquiryJSON = `{"name":"A","email":"a@x.com","phone":"123","eventType":"wedding","preferredDate":"2025-01-01","location":"Hall","message":"hi"}`

func TestInquiryLifecycleScenario(t *testing.T) {
	f := setupAPI(t)
	adminToken := f.bootstrapAdmin(t)
	clientToken := f.registerClient(t, adminToken)

	// public submission starts pending
	w, created := f.do(t, http.MethodPost, "/api/inquiries", validInquiryJSON, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "pending", created["status"])
	id, _ := created["_id"].(string)
	require.NotEmpty(t, id)

	// admin marks it handled
	w, updated := f.do(t, http.MethodPut, "/api/inquiries/"+id+"/status", `{"status":"handled"}`, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "handled", updated["status"])

	// listing is admin-only
	w, _ = f.do(t, http.MethodGet, "/api/inquiries", "", clientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = f.do(t, http.MethodGet, "/api/inquiries", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = f.do(t, http.MethodGet, "/api/inquiries", "", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// admin deletes; repeat delete reports not found
	w, _ = f.do(t, http.MethodDelete, "/api/inquiries/"+id, "", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w, body := f.do(t, http.MethodDelete, "/api/inquiries/"+id, "", adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestBootstrapAdminOnlyOnce(t *testing.T) {
	f := setupAPI(t)
	f.bootstrapAdmin(t)

	w, body := f.do(t, http.MethodPost, "/api/auth/register-first-admin",
		`{"name":"Other","email":"other@example.com","password":"pw"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ADMIN_EXISTS", body["code"])
}

func TestLoginFailures(t *testing.T) {
	f := setupAPI(t)
	f.bootstrapAdmin(t)

	w1, b1 := f.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`, "")
	w2, b2 := f.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"whatever"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, w1.Code, w2.Code)
	assert.Equal(t, b1["code"], b2["code"])
	assert.Equal(t, b1["message"], b2["message"])
}

func TestLoginNeverReturnsHash(t *testing.T) {
	f := setupAPI(t)
	f.bootstrapAdmin(t)

	w, _ := f.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$") // bcrypt prefix
}

func TestFeedbackRoutes(t *testing.T) {
	f := setupAPI(t)
	adminToken := f.bootstrapAdmin(t)

	// non-integer rating fails before any policy runs
	w, body := f.do(t, http.MethodPost, "/api/feedbacks",
		`{"name":"C","email":"c@x.com","eventType":"birthday","eventDate":"2024-11-20","rating":4.5,"message":"nice"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	w, created := f.do(t, http.MethodPost, "/api/feedbacks",
		`{"name":"C","email":"c@x.com","eventType":"birthday","eventDate":"2024-11-20","rating":4,"message":"nice","featured":true}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, false, created["featured"]) // client cannot self-feature
	id, _ := created["_id"].(string)
	require.NotEmpty(t, id)

	// public reads
	w, _ = f.do(t, http.MethodGet, "/api/feedbacks", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = f.do(t, http.MethodGet, "/api/feedbacks/featured", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	// admin features it, then the public featured list includes it
	w, _ = f.do(t, http.MethodPut, "/api/feedbacks/"+id+"/featured", `{"featured":true}`, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = f.do(t, http.MethodGet, "/api/feedbacks/featured", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	// get by id is admin-gated
	w, _ = f.do(t, http.MethodGet, "/api/feedbacks/"+id, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = f.do(t, http.MethodGet, "/api/feedbacks/"+id, "", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardRoute(t *testing.T) {
	f := setupAPI(t)
	adminToken := f.bootstrapAdmin(t)
	clientToken := f.registerClient(t, adminToken)

	f.do(t, http.MethodPost, "/api/inquiries", validInquiryJSON, "")

	w, _ := f.do(t, http.MethodGet, "/api/admin/dashboard", "", clientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, stats := f.do(t, http.MethodGet, "/api/admin/dashboard", "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), stats["totalClients"])
	assert.Equal(t, float64(1), stats["totalInquiries"])
}

func TestMeAndVerify(t *testing.T) {
	f := setupAPI(t)
	adminToken := f.bootstrapAdmin(t)

	for _, path := range []string{"/api/auth/me", "/api/auth/verify"} {
		w, body := f.do(t, http.MethodGet, path, "", adminToken)
		require.Equal(t, http.StatusOK, w.Code, path)
		user, _ := body["user"].(map[string]any)
		require.NotNil(t, user, path)
		assert.Equal(t, "admin@example.com", user["email"])

		w, _ = f.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
