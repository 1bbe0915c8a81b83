package routes

import (
	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"

	"github.com/gorilla/mux"
)

func TableProtectedRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/tableInfo", h.GetAvailableTables).Methods("POST")
	router.Handle("/reservedTable/{email}/{id}", self(h.ReserveTable)).Methods("POST")
	router.Handle("/bookings/{email}", self(h.GetUserBookings)).Methods("GET")
	router.Handle("/bookings/{email}/{tableId}/{bookingId}", self(h.UpdateOwnBooking)).Methods("PATCH")
}
