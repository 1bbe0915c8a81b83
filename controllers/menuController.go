package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context())
	if err != nil {
		h.serviceError(w, r, "list_menu", err)
		return
	}
	respond(w, "Menu retrieved successfully", items)
}

func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, r, "get_menu_item", err)
		return
	}
	respond(w, "Menu item retrieved successfully", item)
}

func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if !decodeBody(w, r, &item) {
		return
	}
	created, err := h.Menu.Create(r.Context(), item)
	if err != nil {
		h.serviceError(w, r, "create_menu_item", err)
		return
	}
	respond(w, "Menu item created successfully", created)
}

func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var patch models.MenuItemPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	res, err := h.Menu.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.serviceError(w, r, "update_menu_item", err)
		return
	}
	respond(w, "Menu item updated", res)
}

func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	res, err := h.Menu.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, r, "delete_menu_item", err)
		return
	}
	respond(w, "Menu item deleted", res)
}
