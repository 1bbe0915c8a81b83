package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	middleware "github.com/FahimDeveloper/restaurant-management-server/middlewares"
	"github.com/FahimDeveloper/restaurant-management-server/models"
)

func (h *Handler) GetAvailableTables(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	tables, err := h.Reservations.FindAvailableTables(r.Context(), body.Date, body.Time)
	if err != nil {
		h.serviceError(w, r, "find_available_tables", err)
		return
	}
	respond(w, "Available tables retrieved successfully", tables)
}

func (h *Handler) ReserveTable(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if !decodeBody(w, r, &booking) {
		return
	}
	res, err := h.Reservations.ReserveTable(r.Context(), mux.Vars(r)["id"], middleware.GetEmail(r), booking)
	if err != nil {
		h.serviceError(w, r, "reserve_table", err)
		return
	}
	respond(w, "Table reserved successfully", res)
}

func (h *Handler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Reservations.ListUserBookings(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.serviceError(w, r, "list_user_bookings", err)
		return
	}
	respond(w, "Bookings retrieved successfully", bookings)
}

func (h *Handler) UpdateOwnBooking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	vars := mux.Vars(r)
	res, err := h.Reservations.CancelOwnBooking(r.Context(), vars["tableId"], vars["bookingId"], vars["email"], body.Status)
	if err != nil {
		h.serviceError(w, r, "cancel_booking", err)
		return
	}
	respond(w, "Booking updated", res)
}

func (h *Handler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Reservations.ListAllBookings(r.Context())
	if err != nil {
		h.serviceError(w, r, "list_all_bookings", err)
		return
	}
	respond(w, "Bookings retrieved successfully", bookings)
}

func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email  string `json:"email"`
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	vars := mux.Vars(r)
	res, err := h.Reservations.SetBookingStatus(r.Context(), vars["tableId"], vars["bookingId"], body.Email, body.Status)
	if err != nil {
		h.serviceError(w, r, "set_booking_status", err)
		return
	}
	respond(w, "Booking updated", res)
}

func (h *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Reservations.ListTables(r.Context())
	if err != nil {
		h.serviceError(w, r, "list_tables", err)
		return
	}
	respond(w, "Tables retrieved successfully", tables)
}

func (h *Handler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var table models.Table
	if !decodeBody(w, r, &table) {
		return
	}
	created, err := h.Reservations.CreateTable(r.Context(), table)
	if err != nil {
		h.serviceError(w, r, "create_table", err)
		return
	}
	respond(w, "Table created successfully", created)
}
