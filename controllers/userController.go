package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/FahimDeveloper/restaurant-management-server/models"
	"github.com/FahimDeveloper/restaurant-management-server/services"
)

// IssueToken signs a credential for the email in the body. Identity is
// established by the client's own sign-in provider beforehand.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Email == "" {
		fail(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := h.Tokens.GenerateToken(body.Email)
	if err != nil {
		h.serviceError(w, r, "issue_token", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}
	// Roles are only granted through the admin endpoint.
	user.Role = ""

	outcome, err := h.Users.CreateUser(r.Context(), user)
	if err != nil {
		h.serviceError(w, r, "create_user", err)
		return
	}
	message := "User created successfully"
	if outcome == services.UserAlreadyPresent {
		message = "User already exists"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  outcome,
		"message": message,
	})
}

func (h *Handler) GetUserRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	role, err := h.Users.GetRole(r.Context(), email)
	if err != nil {
		h.serviceError(w, r, "get_user_role", err)
		return
	}
	respond(w, "Role retrieved successfully", map[string]string{"role": role})
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		h.serviceError(w, r, "list_users", err)
		return
	}
	respond(w, "Users retrieved successfully", users)
}

func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Role string `json:"role"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	res, err := h.Users.SetRole(r.Context(), mux.Vars(r)["email"], body.Role)
	if err != nil {
		h.serviceError(w, r, "set_user_role", err)
		return
	}
	respond(w, "Role updated", res)
}

func (h *Handler) GetCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Orders.CountUsersAndStaff(r.Context())
	if err != nil {
		h.serviceError(w, r, "count_users", err)
		return
	}
	respond(w, "Counts retrieved successfully", counts)
}
