package routes

import (
	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"

	"github.com/gorilla/mux"
)

func CartProtectedRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/cartItems", h.AddCartItem).Methods("POST")
	router.Handle("/cartItems/owner/{email}", self(h.ClearCart)).Methods("DELETE")
	router.Handle("/cartItems/{email}", self(h.GetCartItems)).Methods("GET")
	router.HandleFunc("/cartItems/{id}/increase", h.IncreaseCartItem).Methods("PATCH")
	router.HandleFunc("/cartItems/{id}/decrease", h.DecreaseCartItem).Methods("PATCH")
	router.HandleFunc("/cartItems/{id}", h.DeleteCartItem).Methods("DELETE")
}
