package routes

import (
	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"

	"github.com/gorilla/mux"
)

func StaffAdminRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/staff", h.GetStaff).Methods("GET")
	router.HandleFunc("/staff", h.CreateStaff).Methods("POST")
	router.HandleFunc("/staff/{id}", h.GetStaffMember).Methods("GET")
	router.HandleFunc("/staff/{id}", h.UpdateStaff).Methods("PATCH")
	router.HandleFunc("/staff/{id}", h.DeleteStaff).Methods("DELETE")
}
