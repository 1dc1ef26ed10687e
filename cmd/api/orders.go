package main

import (
	"net/http"

	"github.com/Beka01247/forno-storefront/internal/checkout"
	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/go-chi/chi"
)

// CreateOrderRequest is an order whose items were described client side.
type CreateOrderRequest struct {
	checkout.Form
	Items     string       `json:"items"`
	LineCount int          `json:"line_count"`
	Subtotal  domain.Money `json:"subtotal"`
}

func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.checkout.BuildRawOrder(req.Form, req.Items, req.LineCount, req.Subtotal)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	confirmation, err := app.checkout.Submit(r.Context(), order)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	order.ID = confirmation.OrderID

	if err := app.jsonRespone(w, http.StatusCreated, CheckoutResponse{OrderID: confirmation.OrderID, Order: order}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "order_id")
	if id == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	order, err := app.orders.Get(r.Context(), id)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}
