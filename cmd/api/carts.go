package main

import (
	"net/http"
	"strconv"

	"github.com/Beka01247/forno-storefront/internal/cart"
	"github.com/Beka01247/forno-storefront/internal/checkout"
	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/go-chi/chi"
)

type CartResponse struct {
	ID        string            `json:"id"`
	Items     []domain.LineItem `json:"items"`
	Subtotal  domain.Money      `json:"subtotal"`
	ItemCount int               `json:"item_count"`
}

type AddItemRequest struct {
	ProductID domain.ProductID `json:"product_id" validate:"required"`
	// defaults to 1
	Quantity *int           `json:"quantity"`
	Options  domain.Options `json:"options"`
}

type AddItemResponse struct {
	Item domain.LineItem `json:"item"`
	Cart CartResponse    `json:"cart"`
}

type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CheckoutResponse struct {
	OrderID string       `json:"order_id"`
	Order   domain.Order `json:"order"`
}

func cartResponse(id string, c *cart.Cart) CartResponse {
	return CartResponse{
		ID:        id,
		Items:     c.Items(),
		Subtotal:  c.Subtotal(),
		ItemCount: c.ItemCount(),
	}
}

func itemIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, ErrInvalidIndex
	}
	return index, nil
}

func (app *application) createCartHandler(w http.ResponseWriter, r *http.Request) {
	id, c, err := app.carts.Create(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, cartResponse(id, c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cart_id")

	c, err := app.carts.Get(r.Context(), id)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, cartResponse(id, c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) addItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cart_id")

	var req AddItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	c, item, err := app.carts.AddItem(r.Context(), id, req.ProductID, quantity, req.Options)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, AddItemResponse{Item: item, Cart: cartResponse(id, c)}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateItemHandler sets a line's quantity; zero removes the line.
func (app *application) updateItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cart_id")
	index, err := itemIndex(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	c, err := app.carts.UpdateQuantity(r.Context(), id, index, *req.Quantity)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, cartResponse(id, c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) removeItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cart_id")
	index, err := itemIndex(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	c, err := app.carts.RemoveItem(r.Context(), id, index)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, cartResponse(id, c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) deleteCartHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.carts.Delete(r.Context(), chi.URLParam(r, "cart_id")); err != nil {
		app.domainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cart_id")

	var form checkout.Form
	if err := readJson(w, r, &form); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, confirmation, err := app.carts.Checkout(r.Context(), id, form)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, CheckoutResponse{OrderID: confirmation.OrderID, Order: order}); err != nil {
		app.internalServerError(w, r, err)
	}
}
