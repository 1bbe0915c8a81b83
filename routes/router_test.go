package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"
	"github.com/FahimDeveloper/restaurant-management-server/helper"
	"github.com/FahimDeveloper/restaurant-management-server/logger"
	"github.com/FahimDeveloper/restaurant-management-server/models"
	"github.com/FahimDeveloper/restaurant-management-server/repository/memory"
	"github.com/FahimDeveloper/restaurant-management-server/services"
)

type testServer struct {
	router http.Handler
	h      *controller.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := memory.New()
	log := logger.New("test", io.Discard)
	h := &controller.Handler{
		Reservations: services.NewReservationService(db.Tables(), log),
		Carts:        services.NewCartService(db.Carts(), log),
		Orders:       services.NewOrderService(db.Orders(), db.Menu(), db.Users(), db.Staff(), nil, log),
		Menu:         services.NewMenuService(db.Menu()),
		Staff:        services.NewStaffService(db.Staff()),
		Users:        services.NewUserService(db.Users()),
		Tokens:       helper.NewTokenHelper("s3cret", time.Hour),
		Log:          log,
		OrderFeedHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	}
	return &testServer{router: NewRouter(h), h: h}
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("%s %s: decode body: %v", method, path, err)
		}
	}
	return rec, decoded
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	if _, err := s.h.Users.CreateUser(context.Background(), models.User{Email: email}); err != nil {
		t.Fatal(err)
	}
	rec, body := s.do(t, http.MethodPost, "/jwt", "", `{"email":"`+email+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /jwt = %d", rec.Code)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("no token in %v", body)
	}
	return token
}

func (s *testServer) promote(t *testing.T, email string) {
	t.Helper()
	if _, err := s.h.Users.SetRole(context.Background(), email, models.RoleAdmin); err != nil {
		t.Fatal(err)
	}
}

func TestPublicRoutes(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("GET / = %d", rec.Code)
	}
	rec, body := s.do(t, http.MethodGet, "/menuCollection", "", "")
	if rec.Code != http.StatusOK || body["success"] != true {
		t.Errorf("GET /menuCollection = %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodPost, "/newUser", "", `{"email":"u1@x.com","name":"U1","role":"admin"}`)
	if rec.Code != http.StatusOK || body["status"] != services.UserInserted {
		t.Errorf("first POST /newUser = %d %v", rec.Code, body)
	}
	rec, body = s.do(t, http.MethodPost, "/newUser", "", `{"email":"u1@x.com"}`)
	if rec.Code != http.StatusOK || body["status"] != services.UserAlreadyPresent {
		t.Errorf("second POST /newUser = %d %v", rec.Code, body)
	}
	if role, _ := s.h.Users.GetRole(context.Background(), "u1@x.com"); role != models.RoleCustomer {
		t.Errorf("self-registration granted role %q", role)
	}

	rec, _ = s.do(t, http.MethodPost, "/jwt", "", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST /jwt without email = %d, want 400", rec.Code)
	}
}

func TestIdentityGate(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "u1@x.com")
	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{"own role", "/userRole/u1@x.com", token, http.StatusOK},
		{"no token", "/userRole/u1@x.com", "", http.StatusUnauthorized},
		{"tampered token", "/userRole/u1@x.com", tampered, http.StatusUnauthorized},
		{"someone else's role", "/userRole/u2@x.com", token, http.StatusForbidden},
		{"admin route as customer", "/admin/orders", token, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := s.do(t, http.MethodGet, tt.path, tt.token, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%v)", rec.Code, tt.wantStatus, body)
			}
			if tt.wantStatus == http.StatusOK {
				data := body["data"].(map[string]interface{})
				if data["role"] != models.RoleCustomer {
					t.Errorf("role = %v", data["role"])
				}
			}
		})
	}
}

func TestCartEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "u1@x.com")

	rec, body := s.do(t, http.MethodPost, "/cartItems", token, `{"menu_item_id":"m1","name":"Soup","price":4.5,"owner_email":"forged@x.com"}`)
	if rec.Code != http.StatusOK || body["status"] != string(models.CartInserted) {
		t.Fatalf("add = %d %v", rec.Code, body)
	}
	rec, body = s.do(t, http.MethodPost, "/cartItems", token, `{"menu_item_id":"m1"}`)
	if rec.Code != http.StatusOK || body["status"] != string(models.CartAlreadyPresent) {
		t.Errorf("second add = %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodGet, "/cartItems/u1@x.com", token, "")
	items, _ := body["data"].([]interface{})
	if rec.Code != http.StatusOK || len(items) != 1 {
		t.Fatalf("list = %d %v", rec.Code, body)
	}
	cartID := items[0].(map[string]interface{})["cart_id"].(string)

	rec, body = s.do(t, http.MethodPatch, "/cartItems/"+cartID+"/increase", token, `{"quantity":5}`)
	if rec.Code != http.StatusOK || body["status"] != string(models.CartAtMaximum) {
		t.Errorf("increase at ceiling = %d %v", rec.Code, body)
	}
	rec, body = s.do(t, http.MethodPatch, "/cartItems/"+cartID+"/decrease", token, `{"quantity":1}`)
	if rec.Code != http.StatusOK || body["status"] != string(models.CartAtMinimum) {
		t.Errorf("decrease at floor = %d %v", rec.Code, body)
	}

	other := s.login(t, "u2@x.com")
	rec, body = s.do(t, http.MethodPatch, "/cartItems/"+cartID+"/increase", other, `{"quantity":1}`)
	if rec.Code != http.StatusOK || body["status"] != string(models.CartNotFound) {
		t.Errorf("increase of another owner's line = %d %v", rec.Code, body)
	}
	rec, body = s.do(t, http.MethodDelete, "/cartItems/"+cartID, other, "")
	data, _ := body["data"].(map[string]interface{})
	if rec.Code != http.StatusOK || data["deleted_count"] != float64(0) {
		t.Errorf("delete of another owner's line = %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodPost, "/cartItems", token, `{"menu_item_id":"m2","quantity":9}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out of range quantity = %d %v", rec.Code, body)
	}

	rec, _ = s.do(t, http.MethodDelete, "/cartItems/owner/u2@x.com", token, "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("clearing another cart = %d, want 403", rec.Code)
	}
	rec, body = s.do(t, http.MethodDelete, "/cartItems/owner/u1@x.com", token, "")
	data, _ = body["data"].(map[string]interface{})
	if rec.Code != http.StatusOK || data["deleted_count"] != float64(1) {
		t.Errorf("clear cart = %d %v", rec.Code, body)
	}
}

func TestOrderAndAdminEndpoints(t *testing.T) {
	s := newTestServer(t)
	customer := s.login(t, "u1@x.com")
	admin := s.login(t, "boss@x.com")
	s.promote(t, "boss@x.com")

	rec, body := s.do(t, http.MethodPost, "/menuCollection", customer, `{"name":"Burger","category":"Mains","price":10}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("customer menu create = %d", rec.Code)
	}
	rec, body = s.do(t, http.MethodPost, "/menuCollection", admin, `{"name":"Burger","category":"Mains","price":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin menu create = %d %v", rec.Code, body)
	}
	menuID := body["data"].(map[string]interface{})["menu_id"].(string)

	rec, body = s.do(t, http.MethodPost, "/orders", customer, `{"ordered_items":["`+menuID+`","`+menuID+`"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("place order = %d %v", rec.Code, body)
	}
	orderID := body["data"].(map[string]interface{})["order_id"].(string)

	rec, body = s.do(t, http.MethodPost, "/orders", customer, `{"ordered_items":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty order = %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodGet, "/orderDetail/"+orderID, customer, "")
	if rec.Code != http.StatusOK {
		t.Errorf("order detail = %d %v", rec.Code, body)
	}
	rec, _ = s.do(t, http.MethodGet, "/orderDetail/missing", customer, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing order detail = %d, want 404", rec.Code)
	}

	rec, body = s.do(t, http.MethodGet, "/admin/orderStats", admin, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stats = %d %v", rec.Code, body)
	}
	stats := body["data"].(map[string]interface{})
	best := stats["best_seller"].(map[string]interface{})
	if best["item"] != "Burger" || best["count"] != float64(2) || best["total_price"] != float64(20) {
		t.Errorf("best seller = %v", best)
	}

	rec, _ = s.do(t, http.MethodGet, "/admin/orderStats/export", admin, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Header().Get("Content-Type"), "spreadsheetml") {
		t.Errorf("export = %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}

	rec, body = s.do(t, http.MethodPatch, "/admin/orders/"+orderID+"/status", admin, `{"status":"preparing"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("set status = %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodDelete, "/orders/boss@x.com/"+orderID, admin, "")
	data := body["data"].(map[string]interface{})
	if rec.Code != http.StatusOK || data["deleted_count"] != float64(0) {
		t.Errorf("foreign cancel = %d %v", rec.Code, body)
	}
	rec, body = s.do(t, http.MethodDelete, "/orders/u1@x.com/"+orderID, customer, "")
	data = body["data"].(map[string]interface{})
	if rec.Code != http.StatusOK || data["deleted_count"] != float64(1) {
		t.Errorf("own cancel = %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodGet, "/admin/counts", admin, "")
	counts := body["data"].(map[string]interface{})
	if rec.Code != http.StatusOK || counts["user_count"] != float64(2) {
		t.Errorf("counts = %d %v", rec.Code, body)
	}
}

func TestReservationEndpoints(t *testing.T) {
	s := newTestServer(t)
	customer := s.login(t, "u1@x.com")
	admin := s.login(t, "boss@x.com")
	s.promote(t, "boss@x.com")

	rec, body := s.do(t, http.MethodPost, "/admin/tables", admin, `{"name":"T1","seats":4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create table = %d %v", rec.Code, body)
	}
	tableID := body["data"].(map[string]interface{})["table_id"].(string)

	booking := `{"reservation_date":"2024-05-01","time":"19:00","persons":2,"phone":"012","name":"U1","status":"confirmed","table_name":"VIP"}`
	rec, body = s.do(t, http.MethodPost, "/reservedTable/u1@x.com/"+tableID, customer, booking)
	if rec.Code != http.StatusOK {
		t.Fatalf("reserve = %d %v", rec.Code, body)
	}
	bookingID := body["data"].(map[string]interface{})["inserted_id"].(string)

	rec, body = s.do(t, http.MethodGet, "/bookings/u1@x.com", customer, "")
	bookings, _ := body["data"].([]interface{})
	if rec.Code != http.StatusOK || len(bookings) != 1 {
		t.Fatalf("bookings = %d %v", rec.Code, body)
	}
	stored := bookings[0].(map[string]interface{})
	if stored["status"] != models.BookingPending || stored["table_name"] != "T1" {
		t.Errorf("stored booking = %v, want pending at T1", stored)
	}

	ownPath := "/bookings/u1@x.com/" + tableID + "/" + bookingID
	rec, body = s.do(t, http.MethodPatch, ownPath, customer, `{"status":"confirmed"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("customer confirm = %d %v, want 400", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodPost, "/tableInfo", customer, `{"date":"2024-05-01","time":"19:00"}`)
	tables, _ := body["data"].([]interface{})
	if rec.Code != http.StatusOK || len(tables) != 0 {
		t.Errorf("availability = %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodPatch, "/admin/bookings/"+tableID+"/"+bookingID, admin, `{"email":"u1@x.com","status":"confirmed"}`)
	data := body["data"].(map[string]interface{})
	if rec.Code != http.StatusOK || data["matched_count"] != float64(1) {
		t.Errorf("admin confirm = %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodGet, "/bookings/u1@x.com", customer, "")
	bookings, _ = body["data"].([]interface{})
	if rec.Code != http.StatusOK || len(bookings) != 1 {
		t.Fatalf("bookings = %d %v", rec.Code, body)
	}
	if status := bookings[0].(map[string]interface{})["status"]; status != models.BookingConfirmed {
		t.Errorf("status = %v, want confirmed", status)
	}

	rec, body = s.do(t, http.MethodPatch, ownPath, customer, `{"status":"cancelled"}`)
	data = body["data"].(map[string]interface{})
	if rec.Code != http.StatusOK || data["modified_count"] != float64(1) {
		t.Errorf("customer cancel = %d %v", rec.Code, body)
	}
}

func TestQueryTokenOnlyOnOrderFeed(t *testing.T) {
	s := newTestServer(t)
	customer := s.login(t, "u1@x.com")
	admin := s.login(t, "boss@x.com")
	s.promote(t, "boss@x.com")

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"feed as admin", "/admin/orderFeed?token=" + admin, http.StatusOK},
		{"feed as customer", "/admin/orderFeed?token=" + customer, http.StatusForbidden},
		{"feed without token", "/admin/orderFeed", http.StatusUnauthorized},
		{"admin route with query token", "/admin/orders?token=" + admin, http.StatusUnauthorized},
		{"own route with query token", "/userRole/u1@x.com?token=" + customer, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := s.do(t, http.MethodGet, tt.path, "", "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%v)", rec.Code, tt.wantStatus, body)
			}
		})
	}

	rec, _ := s.do(t, http.MethodGet, "/admin/orderFeed", admin, "")
	if rec.Code != http.StatusOK {
		t.Errorf("feed with bearer header = %d", rec.Code)
	}
}
