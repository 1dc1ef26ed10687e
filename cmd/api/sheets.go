package main

import (
	"errors"
	"net/http"
)

var ErrSheetsNotConfigured = errors.New("google sheets is not configured")

func (app *application) initializeSheetHandler(w http.ResponseWriter, r *http.Request) {
	if app.sheetSync == nil {
		app.serviceUnavailableResponse(w, r, ErrSheetsNotConfigured)
		return
	}

	written, err := app.sheetSync.InitializeSheet(r.Context())
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	response := map[string]interface{}{
		"success":     true,
		"initialized": written,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
