//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/auth"
	"gymdesk/internal/config"
	"gymdesk/internal/db"
	admindomain "gymdesk/internal/domain/admin"
	memberdomain "gymdesk/internal/domain/member"
	paymentdomain "gymdesk/internal/domain/payment"
	plandomain "gymdesk/internal/domain/plan"
	adminrepo "gymdesk/internal/repository/postgres/admin"
	memberrepo "gymdesk/internal/repository/postgres/member"
	paymentrepo "gymdesk/internal/repository/postgres/payment"
	planrepo "gymdesk/internal/repository/postgres/plan"
	"gymdesk/internal/transport/httpserver"
	"gymdesk/internal/transport/httpserver/handler"
	"gymdesk/internal/transport/httpserver/middleware"
	"gymdesk/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.NewFromEnv()

	cfg := config.Config{
		Env:       "development",
		ClientURL: "http://localhost:5173",
		Auth: config.AuthConfig{
			JWTSecret:  "e2e-test-secret",
			SessionTTL: time.Hour,
			LoginRate:  100,
			LoginBurst: 100,
		},
		DB: config.DBConfig{DSN: dsn},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	admins := admindomain.NewService(adminrepo.NewPostgres(dbConn))
	members := memberdomain.NewService(memberrepo.NewPostgres(dbConn))
	plans := plandomain.NewService(planrepo.NewPostgres(dbConn))
	payments := paymentdomain.NewService(paymentrepo.NewPostgres(dbConn), cfg.Payments.AllowedMethods)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	session := middleware.NewSessionAuth(tokens)

	handlers := handler.New(admins, members, plans, payments, tokens, false, log)
	router := httpserver.NewRouter(cfg, handlers, session)
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE payments, members, plans, admins RESTART IDENTITY CASCADE",
	).Error
}

// newClient returns a client with a cookie jar so the session cookie set by
// login is carried on subsequent requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

func decodeBody(t *testing.T, body []byte, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("unmarshal response %s: %v", body, err)
	}
}

// registerAndLogin creates an admin account and logs the client in, leaving
// the session cookie on the client's jar.
func registerAndLogin(t *testing.T, client *http.Client, baseURL, email string) {
	t.Helper()

	resp, body := requestJSON(t, client, http.MethodPost, baseURL+"/api/auth/register", map[string]interface{}{
		"name":     "E2E Admin",
		"email":    email,
		"password": "e2e-password",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status %d, body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodPost, baseURL+"/api/auth/login", map[string]interface{}{
		"email":    email,
		"password": "e2e-password",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d, body %s", resp.StatusCode, body)
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type memberData struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	EndDate  *string `json:"end_date"`
	Status   string  `json:"status"`
}

func TestE2EHealthAndAuth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := newClient(t)

	resp, _ := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: status %d", resp.StatusCode)
	}

	// Protected routes reject anonymous clients.
	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/members/all", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous members list: status %d, body %s", resp.StatusCode, body)
	}

	registerAndLogin(t, client, env.server.URL, "auth@example.com")

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/members/all", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("members list after login: status %d, body %s", resp.StatusCode, body)
	}

	// Duplicate registration is rejected.
	resp, _ = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/auth/register", map[string]interface{}{
		"name":     "Again",
		"email":    "auth@example.com",
		"password": "e2e-password",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: status %d", resp.StatusCode)
	}

	// Logout clears the cookie; the next request is anonymous again.
	resp, _ = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/auth/logout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: status %d", resp.StatusCode)
	}
	resp, _ = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/members/all", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("members list after logout: status %d", resp.StatusCode)
	}
}

func TestE2EMemberLifecycle(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := newClient(t)
	registerAndLogin(t, client, env.server.URL, "members@example.com")

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/members/add", map[string]interface{}{
		"full_name": "Jordan Lee",
		"email":     "jordan@example.com",
		"phone":     "555-0100",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create member: status %d, body %s", resp.StatusCode, body)
	}
	var created struct {
		envelope
		MemberID string     `json:"memberId"`
		Data     memberData `json:"data"`
	}
	decodeBody(t, body, &created)
	if created.MemberID == "" {
		t.Fatal("create member: empty memberId")
	}
	// No end date yet, so the derived status reads expired until a payment
	// lands.
	if created.Data.Status != "expired" {
		t.Fatalf("create member: status %q, want expired", created.Data.Status)
	}

	// Duplicate email is rejected.
	resp, _ = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/members/add", map[string]interface{}{
		"full_name": "Other",
		"email":     "jordan@example.com",
		"phone":     "555-0199",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate member: status %d", resp.StatusCode)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/members/"+created.MemberID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get member: status %d, body %s", resp.StatusCode, body)
	}

	resp, body = requestJSON(t, client, http.MethodPut, env.server.URL+"/api/members/"+created.MemberID, map[string]interface{}{
		"phone": "555-0101",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update member: status %d, body %s", resp.StatusCode, body)
	}
	var updated struct {
		envelope
		Data memberData `json:"data"`
	}
	decodeBody(t, body, &updated)
	if updated.Data.Phone != "555-0101" {
		t.Fatalf("update member: phone %q", updated.Data.Phone)
	}
	if updated.Data.FullName != "Jordan Lee" {
		t.Fatalf("update member: omitted full_name changed to %q", updated.Data.FullName)
	}

	resp, _ = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/members/"+created.MemberID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete member: status %d", resp.StatusCode)
	}
	resp, _ = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/members/"+created.MemberID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get deleted member: status %d", resp.StatusCode)
	}
}

func TestE2EPlans(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := newClient(t)

	// Plan listing is public.
	resp, _ := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/plans/all", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public plans list: status %d", resp.StatusCode)
	}

	registerAndLogin(t, client, env.server.URL, "plans@example.com")

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/plans/create", map[string]interface{}{
		"name":          "Monthly",
		"price":         29.99,
		"duration_days": 30,
		"features":      "Gym access,Locker",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create plan: status %d, body %s", resp.StatusCode, body)
	}
	var created struct {
		envelope
		PlanID string `json:"planId"`
	}
	decodeBody(t, body, &created)

	resp, _ = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/plans/create", map[string]interface{}{
		"name":          "Monthly",
		"price":         40,
		"duration_days": 30,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate plan: status %d", resp.StatusCode)
	}

	resp, body = requestJSON(t, client, http.MethodPut, env.server.URL+"/api/plans/"+created.PlanID, map[string]interface{}{
		"price": 35.0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update plan: status %d, body %s", resp.StatusCode, body)
	}

	resp, _ = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/plans/"+created.PlanID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete plan: status %d", resp.StatusCode)
	}
	resp, _ = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/plans/"+created.PlanID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("delete missing plan: status %d", resp.StatusCode)
	}
}

func TestE2EPaymentLedger(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := newClient(t)
	registerAndLogin(t, client, env.server.URL, "payments@example.com")

	// Member whose membership expired long ago.
	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/members/add", map[string]interface{}{
		"full_name": "Sam Rivera",
		"email":     "sam@example.com",
		"phone":     "555-0200",
		"end_date":  "2020-01-01",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create member: status %d, body %s", resp.StatusCode, body)
	}
	var created struct {
		envelope
		MemberID string `json:"memberId"`
	}
	decodeBody(t, body, &created)

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/payments/add", map[string]interface{}{
		"member_id":     created.MemberID,
		"amount":        49.5,
		"duration_days": 30,
		"remarks":       "renewal",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add payment: status %d, body %s", resp.StatusCode, body)
	}
	var payment struct {
		envelope
		NewEndDate string `json:"new_end_date"`
		PaymentID  string `json:"paymentId"`
	}
	decodeBody(t, body, &payment)

	// Expired membership anchors at today, so the new end date is today + 30.
	wantEnd := time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")
	if payment.NewEndDate != wantEnd {
		t.Fatalf("add payment: new_end_date %q, want %q", payment.NewEndDate, wantEnd)
	}

	// The member is active again and carries the new end date.
	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/members/"+created.MemberID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get member: status %d, body %s", resp.StatusCode, body)
	}
	var fetched struct {
		envelope
		Data memberData `json:"data"`
	}
	decodeBody(t, body, &fetched)
	if fetched.Data.Status != "active" {
		t.Fatalf("member status after payment: %q, want active", fetched.Data.Status)
	}
	if fetched.Data.EndDate == nil || *fetched.Data.EndDate != wantEnd {
		t.Fatalf("member end_date after payment: %v, want %q", fetched.Data.EndDate, wantEnd)
	}

	// An active membership anchors at its current end date.
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/payments/add", map[string]interface{}{
		"member_id":     created.MemberID,
		"amount":        49.5,
		"duration_days": 15,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("second payment: status %d, body %s", resp.StatusCode, body)
	}
	decodeBody(t, body, &payment)
	wantEnd = time.Now().UTC().AddDate(0, 0, 45).Format("2006-01-02")
	if payment.NewEndDate != wantEnd {
		t.Fatalf("second payment: new_end_date %q, want %q", payment.NewEndDate, wantEnd)
	}

	// Members with payment history cannot be deleted.
	resp, _ = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/members/"+created.MemberID, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("delete member with payments: status %d", resp.StatusCode)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/payments/revenue", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("revenue: status %d, body %s", resp.StatusCode, body)
	}
	var revenue struct {
		envelope
		TotalRevenue float64 `json:"total_revenue"`
	}
	decodeBody(t, body, &revenue)
	if revenue.TotalRevenue != 99.0 {
		t.Fatalf("revenue: %v, want 99", revenue.TotalRevenue)
	}

	resp, body = requestJSON(t, client, http.MethodGet,
		fmt.Sprintf("%s/api/payments/history?member_id=%s", env.server.URL, created.MemberID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history: status %d, body %s", resp.StatusCode, body)
	}
	var history struct {
		envelope
		Count int `json:"count"`
	}
	decodeBody(t, body, &history)
	if history.Count != 2 {
		t.Fatalf("history count: %d, want 2", history.Count)
	}

	// Unknown members never gain a payment row.
	resp, _ = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/payments/add", map[string]interface{}{
		"member_id":     "00000000-0000-0000-0000-000000000000",
		"amount":        10,
		"duration_days": 30,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("payment for unknown member: status %d", resp.StatusCode)
	}
}
