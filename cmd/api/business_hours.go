package main

import (
	"errors"
	"net/http"
	"strconv"

	"lokal/internal/domain/businesses"
	"lokal/internal/domain/hours"

	"github.com/go-chi/chi/v5"
)

// getBusinessHoursHandler godoc
//
//	@Summary		Get opening hours of a business
//	@Tags			businesses
//	@Produce		json
//	@Param			businessID	path		int	true	"Business ID"
//	@Success		200			{array}		hours.Entry
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/businesses/{businessID}/hours [get]
func (app *application) getBusinessHoursHandler(w http.ResponseWriter, r *http.Request) {
	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	entries, err := app.store.Hours.ListByBusiness(r.Context(), businessID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, entries); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpsertHoursPayload struct {
	Weekday   int     `json:"weekday" validate:"min=0,max=6"`
	OpenTime  *string `json:"open_time" validate:"omitempty,len=5"`
	CloseTime *string `json:"close_time" validate:"omitempty,len=5"`
	Closed    bool    `json:"closed"`
}

// upsertBusinessHoursHandler godoc
//
//	@Summary		Set opening hours for one weekday
//	@Description	Creates or replaces the schedule entry for the given weekday. Only the business owner can set hours.
//	@Tags			businesses
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		int					true	"Business ID"
//	@Param			payload		body		UpsertHoursPayload	true	"Schedule entry"
//	@Success		200			{object}	hours.Entry
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/hours [post]
func (app *application) upsertBusinessHoursHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpsertHoursPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	isOwner, err := app.store.Businesses.IsOwner(r.Context(), businessID, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !isOwner {
		app.notFoundResponse(w, r, businesses.ErrNotFound)
		return
	}

	entry := &hours.Entry{
		BusinessID: businessID,
		Weekday:    payload.Weekday,
		OpenTime:   payload.OpenTime,
		CloseTime:  payload.CloseTime,
		Closed:     payload.Closed,
	}

	if err := app.store.Hours.Upsert(r.Context(), entry); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, entry); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteBusinessHoursHandler godoc
//
//	@Summary		Delete the schedule entry for one weekday
//	@Tags			businesses
//	@Produce		json
//	@Param			businessID	path		int	true	"Business ID"
//	@Param			weekday		path		int	true	"Weekday (0 = Sunday)"
//	@Success		204			{string}	string	"No Content"
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/hours/{weekday} [delete]
func (app *application) deleteBusinessHoursHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	weekday, err := strconv.Atoi(chi.URLParam(r, "weekday"))
	if err != nil || weekday < 0 || weekday > 6 {
		app.badRequestResponse(w, r, errors.New("weekday must be between 0 and 6"))
		return
	}

	isOwner, err := app.store.Businesses.IsOwner(r.Context(), businessID, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !isOwner {
		app.notFoundResponse(w, r, businesses.ErrNotFound)
		return
	}

	err = app.store.Hours.Delete(r.Context(), businessID, weekday)
	if err != nil {
		switch err {
		case hours.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
