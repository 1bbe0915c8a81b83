package routes

import (
	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"

	"github.com/gorilla/mux"
)

func PublicRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/", h.Home).Methods("GET")
	router.HandleFunc("/jwt", h.IssueToken).Methods("POST")
	router.HandleFunc("/newUser", h.CreateUser).Methods("POST")
	router.HandleFunc("/menuCollection", h.GetMenu).Methods("GET")
	router.HandleFunc("/menuCollection/{id}", h.GetMenuItem).Methods("GET")
}

func UserProtectedRoutes(router *mux.Router, h *controller.Handler) {
	router.Handle("/userRole/{email}", self(h.GetUserRole)).Methods("GET")
}
