package controller

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	middleware "github.com/FahimDeveloper/restaurant-management-server/middlewares"
)

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderedItems []string  `json:"ordered_items"`
		Date         time.Time `json:"date"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	order, err := h.Orders.PlaceOrder(r.Context(), middleware.GetEmail(r), body.OrderedItems, body.Date)
	if err != nil {
		h.serviceError(w, r, "place_order", err)
		return
	}
	respond(w, "Order placed successfully", order)
}

func (h *Handler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrdersForOwner(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.serviceError(w, r, "list_user_orders", err)
		return
	}
	respond(w, "Orders retrieved successfully", orders)
}

func (h *Handler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	items, err := h.Orders.GetOrderDetail(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.serviceError(w, r, "get_order_detail", err)
		return
	}
	respond(w, "Order detail retrieved successfully", items)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := h.Orders.CancelOrder(r.Context(), vars["email"], vars["id"])
	if err != nil {
		h.serviceError(w, r, "cancel_order", err)
		return
	}
	respond(w, "Order cancelled", res)
}

func (h *Handler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListAllOrders(r.Context())
	if err != nil {
		h.serviceError(w, r, "list_orders", err)
		return
	}
	respond(w, "Orders retrieved successfully", orders)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	res, err := h.Orders.SetOrderStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		h.serviceError(w, r, "set_order_status", err)
		return
	}
	respond(w, "Order status updated", res)
}

func (h *Handler) GetOrderStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Orders.ComputeOrderStatistics(r.Context())
	if err != nil {
		h.serviceError(w, r, "order_statistics", err)
		return
	}
	respond(w, "Order statistics retrieved successfully", stats)
}

// ExportOrderStatistics serves the statistics as an xlsx download. The
// workbook is built in memory so a failure can still produce a JSON error.
func (h *Handler) ExportOrderStatistics(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Orders.ExportStatistics(r.Context(), &buf); err != nil {
		h.serviceError(w, r, "export_order_statistics", err)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=order_statistics.xlsx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// OrderFeed upgrades to the websocket order event stream.
func (h *Handler) OrderFeed(w http.ResponseWriter, r *http.Request) {
	h.OrderFeedHandler.ServeHTTP(w, r)
}
