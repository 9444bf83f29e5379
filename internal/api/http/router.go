package http

import (
	"net/http"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every handler onto the API routes.
func NewRouter(orders service.OrderService, payments service.PaymentService, custodies service.CustodyService, rentals service.RentalService) *mux.Router {
	oh := NewOrderHandler(orders)
	ph := NewPaymentHandler(payments)
	ch := NewCustodyHandler(custodies)
	rh := NewRentalHandler(rentals)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/orders", oh.Create).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", oh.Get).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/items", oh.UpdateItems).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}/deliver", oh.Deliver).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/finish", oh.Finish).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/cancel", oh.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/items/{clothID}/return", oh.ReturnItem).Methods(http.MethodPost)

	api.HandleFunc("/orders/{id}/payments", ph.Add).Methods(http.MethodPost)
	api.HandleFunc("/payments/{id}/pay", ph.Pay).Methods(http.MethodPost)
	api.HandleFunc("/payments/{id}/cancel", ph.Cancel).Methods(http.MethodPost)

	api.HandleFunc("/orders/{id}/custodies", ch.Create).Methods(http.MethodPost)
	api.HandleFunc("/custodies/{id}/decide", ch.Decide).Methods(http.MethodPost)
	api.HandleFunc("/custodies/{id}/return-proof", ch.AttachReturnProof).Methods(http.MethodPost)

	api.HandleFunc("/cloths/{id}/availability", rh.Availability).Methods(http.MethodGet)
	api.HandleFunc("/cloths/{id}/unavailable-days", rh.UnavailableDays).Methods(http.MethodGet)

	return r
}
