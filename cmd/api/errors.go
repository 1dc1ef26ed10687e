package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Beka01247/forno-storefront/internal/domain"
)

var (
	ErrInvalidID    = errors.New("invalid ID format")
	ErrInvalidIndex = errors.New("invalid item index")
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusNotFound, "not found")
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("conflict response", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusConflict, err.Error())
}

func (app *application) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("upstream error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadGateway, "an upstream service failed, please try again")
}

func (app *application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("service unavailable", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusServiceUnavailable, err.Error())
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds()+0.5)))

	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter.String())
}

// domainError maps the engine's error kinds onto HTTP statuses.
func (app *application) domainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsValidation(err):
		app.badRequestResponse(w, r, err)
	case domain.IsIndex(err):
		app.conflictResponse(w, r, err)
	case errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		app.notFoundError(w, r, err)
	case domain.IsSubmission(err):
		app.badGatewayResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}
