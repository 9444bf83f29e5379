package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/service"

	"github.com/gorilla/mux"
)

// OrderHandler exposes the order lifecycle over HTTP.
type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderItemPayload struct {
	ClothID       int64  `json:"cloth_id"`
	PriceCents    int64  `json:"price_cents"`
	Type          string `json:"type"`
	DaysOfRent    int    `json:"days_of_rent"`
	DeliveryDate  string `json:"delivery_date"`
	DiscountType  string `json:"discount_type"`
	DiscountValue int64  `json:"discount_value"`
	Returnable    bool   `json:"returnable"`
}

type createOrderPayload struct {
	ClientID            int64              `json:"client_id"`
	InventoryID         int64              `json:"inventory_id"`
	Items               []orderItemPayload `json:"items"`
	DiscountType        string             `json:"discount_type"`
	DiscountValue       int64              `json:"discount_value"`
	InitialPaymentCents int64              `json:"initial_payment_cents"`
	InitialPaymentPaid  bool               `json:"initial_payment_paid"`
	Notes               string             `json:"notes"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createOrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, domain.Validationf("invalid request body: %v", err))
		return
	}
	items, err := toItemInputs(payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.orders.CreateOrder(r.Context(), service.CreateOrderInput{
		ClientID:            payload.ClientID,
		InventoryID:         payload.InventoryID,
		Items:               items,
		DiscountType:        domain.DiscountType(strings.ToUpper(payload.DiscountType)),
		DiscountValue:       payload.DiscountValue,
		InitialPaymentCents: payload.InitialPaymentCents,
		InitialPaymentPaid:  payload.InitialPaymentPaid,
		Notes:               payload.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *OrderHandler) UpdateItems(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var payload struct {
		Items []orderItemPayload `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, domain.Validationf("invalid request body: %v", err))
		return
	}
	items, err := toItemInputs(payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.orders.UpdateItems(r.Context(), orderID, items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *OrderHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.Deliver)
}

func (h *OrderHandler) Finish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.Finish)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.Cancel)
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, orderID int64) (*domain.Order, error)) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := fn(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ReturnItem(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	clothID, err := pathID(r, "clothID")
	if err != nil {
		writeError(w, err)
		return
	}
	var payload struct {
		ClothStatus string `json:"cloth_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, domain.Validationf("invalid request body: %v", err))
		return
	}
	status := domain.ClothStatus(strings.ToUpper(payload.ClothStatus))
	if err := h.orders.ReturnItem(r.Context(), orderID, clothID, status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "returned"})
}

func toItemInputs(payloads []orderItemPayload) ([]service.OrderItemInput, error) {
	items := make([]service.OrderItemInput, 0, len(payloads))
	for _, p := range payloads {
		in := service.OrderItemInput{
			ClothID:       p.ClothID,
			PriceCents:    p.PriceCents,
			Type:          domain.OrderItemType(strings.ToUpper(p.Type)),
			DaysOfRent:    p.DaysOfRent,
			DiscountType:  domain.DiscountType(strings.ToUpper(p.DiscountType)),
			DiscountValue: p.DiscountValue,
			Returnable:    p.Returnable,
		}
		if p.DeliveryDate != "" {
			d, err := time.Parse("2006-01-02", p.DeliveryDate)
			if err != nil {
				return nil, domain.Validationf("invalid delivery_date %q, expected YYYY-MM-DD", p.DeliveryDate)
			}
			in.DeliveryDate = &d
		}
		items = append(items, in)
	}
	return items, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("invalid %s %q", name, raw)
	}
	return id, nil
}
