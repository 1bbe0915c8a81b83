package routes

import (
	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"

	"github.com/gorilla/mux"
)

// MenuAdminRoutes holds the menu writes; reads are public.
func MenuAdminRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/menuCollection", h.CreateMenuItem).Methods("POST")
	router.HandleFunc("/menuCollection/{id}", h.UpdateMenuItem).Methods("PATCH")
	router.HandleFunc("/menuCollection/{id}", h.DeleteMenuItem).Methods("DELETE")
}
