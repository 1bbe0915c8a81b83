package routes

import (
	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"

	"github.com/gorilla/mux"
)

func OrderProtectedRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/orders", h.PlaceOrder).Methods("POST")
	router.Handle("/orders/{email}", self(h.GetUserOrders)).Methods("GET")
	router.Handle("/orders/{email}/{id}", self(h.CancelOrder)).Methods("DELETE")
	router.HandleFunc("/orderDetail/{id}", h.GetOrderDetail).Methods("GET")
}
