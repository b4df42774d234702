package main

import (
	"net/http"
	"strconv"

	"lokal/internal/domain/businesses"
	"lokal/internal/domain/faqs"

	"github.com/go-chi/chi/v5"
)

// listBusinessFAQsHandler godoc
//
//	@Summary		List FAQs of a business
//	@Tags			businesses
//	@Produce		json
//	@Param			businessID	path		int	true	"Business ID"
//	@Success		200			{array}		faqs.FAQ
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/businesses/{businessID}/faqs [get]
func (app *application) listBusinessFAQsHandler(w http.ResponseWriter, r *http.Request) {
	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	list, err := app.store.FAQs.ListByBusiness(r.Context(), businessID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

type FAQPayload struct {
	Question string `json:"question" validate:"required,max=300"`
	Answer   string `json:"answer" validate:"required,max=2000"`
}

// createBusinessFAQHandler godoc
//
//	@Summary		Add a FAQ to a business
//	@Description	Only the business owner can add FAQs.
//	@Tags			businesses
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		int			true	"Business ID"
//	@Param			payload		body		FAQPayload	true	"Question and answer"
//	@Success		201			{object}	faqs.FAQ
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/faqs [post]
func (app *application) createBusinessFAQHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload FAQPayload
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

	faq := &faqs.FAQ{
		BusinessID: businessID,
		Question:   payload.Question,
		Answer:     payload.Answer,
	}

	if err := app.store.FAQs.Create(r.Context(), faq); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, faq); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateBusinessFAQHandler godoc
//
//	@Summary		Update a FAQ
//	@Tags			businesses
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		int			true	"Business ID"
//	@Param			faqID		path		int			true	"FAQ ID"
//	@Param			payload		body		FAQPayload	true	"Question and answer"
//	@Success		200			{object}	faqs.FAQ
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/faqs/{faqID} [put]
func (app *application) updateBusinessFAQHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	faqID, err := strconv.ParseInt(chi.URLParam(r, "faqID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload FAQPayload
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

	faq := &faqs.FAQ{
		ID:         faqID,
		BusinessID: businessID,
		Question:   payload.Question,
		Answer:     payload.Answer,
	}

	err = app.store.FAQs.Update(r.Context(), faq)
	if err != nil {
		switch err {
		case faqs.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, faq); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteBusinessFAQHandler godoc
//
//	@Summary		Delete a FAQ
//	@Tags			businesses
//	@Produce		json
//	@Param			businessID	path		int	true	"Business ID"
//	@Param			faqID		path		int	true	"FAQ ID"
//	@Success		204			{string}	string	"No Content"
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/faqs/{faqID} [delete]
func (app *application) deleteBusinessFAQHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	faqID, err := strconv.ParseInt(chi.URLParam(r, "faqID"), 10, 64)
	if err != nil {
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

	err = app.store.FAQs.Delete(r.Context(), faqID, businessID)
	if err != nil {
		switch err {
		case faqs.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
