package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	middleware "github.com/FahimDeveloper/restaurant-management-server/middlewares"
	"github.com/FahimDeveloper/restaurant-management-server/models"
	"github.com/FahimDeveloper/restaurant-management-server/services"
)

var cartMessages = map[models.CartOutcome]string{
	models.CartInserted:       "Item added to cart",
	models.CartAlreadyPresent: "Item already in cart",
	models.CartUpdated:        "Cart updated",
	models.CartAtMaximum:      "Quantity is already at the maximum",
	models.CartAtMinimum:      "Quantity is already at the minimum",
	models.CartNotFound:       "Cart item not found",
}

// writeCartResult reports every cart outcome as a success; the status field
// tells the client which one it got.
func writeCartResult(w http.ResponseWriter, res services.CartResult) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  res.Outcome,
		"message": cartMessages[res.Outcome],
		"data":    res,
	})
}

func (h *Handler) GetCartItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Carts.ListItemsForOwner(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.serviceError(w, r, "list_cart", err)
		return
	}
	respond(w, "Cart items retrieved successfully", items)
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if !decodeBody(w, r, &item) {
		return
	}
	item.OwnerEmail = middleware.GetEmail(r)

	res, err := h.Carts.AddItem(r.Context(), item)
	if err != nil {
		h.serviceError(w, r, "add_cart_item", err)
		return
	}
	writeCartResult(w, res)
}

type quantityBody struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) IncreaseCartItem(w http.ResponseWriter, r *http.Request) {
	var body quantityBody
	if !decodeBody(w, r, &body) {
		return
	}
	res, err := h.Carts.IncrementQuantity(r.Context(), middleware.GetEmail(r), mux.Vars(r)["id"], body.Quantity)
	if err != nil {
		h.serviceError(w, r, "increase_cart_item", err)
		return
	}
	writeCartResult(w, res)
}

func (h *Handler) DecreaseCartItem(w http.ResponseWriter, r *http.Request) {
	var body quantityBody
	if !decodeBody(w, r, &body) {
		return
	}
	res, err := h.Carts.DecrementQuantity(r.Context(), middleware.GetEmail(r), mux.Vars(r)["id"], body.Quantity)
	if err != nil {
		h.serviceError(w, r, "decrease_cart_item", err)
		return
	}
	writeCartResult(w, res)
}

func (h *Handler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	res, err := h.Carts.RemoveItem(r.Context(), middleware.GetEmail(r), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, r, "delete_cart_item", err)
		return
	}
	respond(w, "Cart item removed", res)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.Carts.RemoveAllForOwner(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.serviceError(w, r, "clear_cart", err)
		return
	}
	respond(w, "Cart cleared", res)
}
