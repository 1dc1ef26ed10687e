package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/Beka01247/forno-storefront/internal/pricing"
	"github.com/go-chi/chi"
)

type CategoryListing struct {
	Category domain.Category  `json:"category"`
	Products []domain.Product `json:"products"`
}

type QuoteRequest struct {
	ProductID domain.ProductID `json:"product_id" validate:"required"`
	Options   domain.Options   `json:"options"`
}

type QuoteResponse struct {
	Product domain.Product `json:"product"`
	pricing.Quote
}

func (app *application) listCatalogHandler(w http.ResponseWriter, r *http.Request) {
	listings := make([]CategoryListing, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		listings = append(listings, CategoryListing{
			Category: category,
			Products: app.catalog.ListByCategory(category),
		})
	}

	if err := app.jsonRespone(w, http.StatusOK, listings); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) listCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		app.notFoundError(w, r, errors.New("unknown category "+string(category)))
		return
	}

	listing := CategoryListing{
		Category: category,
		Products: app.catalog.ListByCategory(category),
	}

	if err := app.jsonRespone(w, http.StatusOK, listing); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "product_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	product, err := app.catalog.Lookup(domain.ProductID(id))
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// quoteHandler prices a selection without touching any cart.
func (app *application) quoteHandler(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.catalog.Lookup(req.ProductID)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	quote, err := app.pricing.Price(product, req.Options)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, QuoteResponse{Product: product, Quote: quote}); err != nil {
		app.internalServerError(w, r, err)
	}
}
