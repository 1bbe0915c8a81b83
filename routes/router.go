package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/FahimDeveloper/restaurant-management-server/controllers"
	middleware "github.com/FahimDeveloper/restaurant-management-server/middlewares"
)

// NewRouter wires every endpoint. Public routes are registered first so
// the authenticated subrouters never see them.
func NewRouter(h *controller.Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(h.Log))

	// Public Routes (No Authentication)
	PublicRoutes(router, h)

	// The websocket feed is the only route that takes ?token=.
	feedRoutes := router.PathPrefix("/admin/orderFeed").Subrouter()
	feedRoutes.Use(middleware.WSAuthentication(h.Tokens), middleware.RequireAdmin(h.Users, h.Log))
	OrderFeedRoutes(feedRoutes, h)

	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication(h.Tokens))

	adminRoutes := securedRoutes.PathPrefix("/").Subrouter()
	adminRoutes.Use(middleware.RequireAdmin(h.Users, h.Log))

	// Routes that act on a {email} path variable go through RequireSelf.
	UserProtectedRoutes(securedRoutes, h)
	TableProtectedRoutes(securedRoutes, h)
	CartProtectedRoutes(securedRoutes, h)
	OrderProtectedRoutes(securedRoutes, h)

	AdminRoutes(adminRoutes, h)
	MenuAdminRoutes(adminRoutes, h)
	StaffAdminRoutes(adminRoutes, h)

	return router
}

func self(handler http.HandlerFunc) http.Handler {
	return middleware.RequireSelf("email")(handler)
}
