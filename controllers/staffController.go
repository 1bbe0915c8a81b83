package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Staff.List(r.Context())
	if err != nil {
		h.serviceError(w, r, "list_staff", err)
		return
	}
	respond(w, "Staff retrieved successfully", staff)
}

func (h *Handler) GetStaffMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.Staff.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, r, "get_staff", err)
		return
	}
	respond(w, "Staff member retrieved successfully", member)
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var member models.Staff
	if !decodeBody(w, r, &member) {
		return
	}
	created, err := h.Staff.Create(r.Context(), member)
	if err != nil {
		h.serviceError(w, r, "create_staff", err)
		return
	}
	respond(w, "Staff member created successfully", created)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var patch models.StaffPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	res, err := h.Staff.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.serviceError(w, r, "update_staff", err)
		return
	}
	respond(w, "Staff member updated", res)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	res, err := h.Staff.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, r, "delete_staff", err)
		return
	}
	respond(w, "Staff member deleted", res)
}
