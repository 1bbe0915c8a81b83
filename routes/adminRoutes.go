package routes

import (
	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"

	"github.com/gorilla/mux"
)

func AdminRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/admin/bookings", h.GetAllBookings).Methods("GET")
	router.HandleFunc("/admin/bookings/{tableId}/{bookingId}", h.UpdateBooking).Methods("PATCH")
	router.HandleFunc("/admin/tables", h.GetTables).Methods("GET")
	router.HandleFunc("/admin/tables", h.CreateTable).Methods("POST")
	router.HandleFunc("/admin/orders", h.GetAllOrders).Methods("GET")
	router.HandleFunc("/admin/orders/{id}/status", h.UpdateOrderStatus).Methods("PATCH")
	router.HandleFunc("/admin/orderStats", h.GetOrderStatistics).Methods("GET")
	router.HandleFunc("/admin/orderStats/export", h.ExportOrderStatistics).Methods("GET")
	router.HandleFunc("/admin/counts", h.GetCounts).Methods("GET")

	router.HandleFunc("/users", h.GetUsers).Methods("GET")
	router.HandleFunc("/users/{email}/role", h.UpdateUserRole).Methods("PATCH")
}

func OrderFeedRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("", h.OrderFeed).Methods("GET")
}
