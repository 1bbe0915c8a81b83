package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FahimDeveloper/restaurant-management-server/helper"
	"github.com/FahimDeveloper/restaurant-management-server/logger"
	middleware "github.com/FahimDeveloper/restaurant-management-server/middlewares"
	"github.com/FahimDeveloper/restaurant-management-server/models"
	"github.com/FahimDeveloper/restaurant-management-server/services"
)

// Handler carries what the HTTP endpoints need. Routes are registered in
// the routes package.
type Handler struct {
	Reservations     *services.ReservationService
	Carts            *services.CartService
	Orders           *services.OrderService
	Menu             *services.MenuService
	Staff            *services.StaffService
	Users            *services.UserService
	Tokens           *helper.TokenHelper
	OrderFeedHandler http.Handler
	Log              *logger.Logger
}

func writeJSON(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respond(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// serviceError maps a service failure to its status code. Store failures
// are logged and reported without detail.
func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		fail(w, http.StatusNotFound, "Resource not found")
	default:
		h.Log.Error(action, middleware.GetRequestID(r), "request failed", err)
		fail(w, http.StatusInternalServerError, "Error occurred while processing the request")
	}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("restaurant management server is running"))
}
