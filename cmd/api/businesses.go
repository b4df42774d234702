package main

import (
	"errors"
	"net/http"
	"strconv"

	"lokal/internal/domain/businesses"

	"github.com/go-chi/chi/v5"
)

func (app *application) businessIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "businessID"), 10, 64)
}

// listBusinessesHandler godoc
//
//	@Summary		List businesses
//	@Description	Lists active businesses with their category and rating snapshot
//	@Tags			businesses
//	@Produce		json
//	@Success		200	{array}		businesses.Business
//	@Failure		500	{object}	error
//	@Router			/businesses [get]
func (app *application) listBusinessesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Businesses.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// searchBusinessesHandler godoc
//
//	@Summary		Search businesses
//	@Description	Searches active businesses by name or city
//	@Tags			businesses
//	@Produce		json
//	@Param			q	query		string	true	"Search term"
//	@Success		200	{array}		businesses.Business
//	@Failure		400	{object}	error
//	@Failure		500	{object}	error
//	@Router			/businesses/search [get]
func (app *application) searchBusinessesHandler(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		app.badRequestResponse(w, r, errors.New("missing search term"))
		return
	}

	list, err := app.store.Businesses.Search(r.Context(), term)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getBusinessHandler godoc
//
//	@Summary		Get a business
//	@Tags			businesses
//	@Produce		json
//	@Param			businessID	path		int	true	"Business ID"
//	@Success		200			{object}	businesses.Business
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Router			/businesses/{businessID} [get]
func (app *application) getBusinessHandler(w http.ResponseWriter, r *http.Request) {
	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	business, err := app.store.Businesses.GetByID(r.Context(), businessID)
	if err != nil {
		switch err {
		case businesses.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, business); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getBusinessBySlugHandler godoc
//
//	@Summary		Get a business by slug
//	@Tags			businesses
//	@Produce		json
//	@Param			slug	path		string	true	"Business slug"
//	@Success		200		{object}	businesses.Business
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Router			/businesses/slug/{slug} [get]
func (app *application) getBusinessBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	business, err := app.store.Businesses.GetBySlug(r.Context(), slug)
	if err != nil {
		switch err {
		case businesses.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, business); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateBusinessPayload struct {
	Name        string  `json:"name" validate:"required,max=120"`
	CategoryID  int64   `json:"category_id" validate:"required"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Website     *string `json:"website" validate:"omitempty,url,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	PostalCode  *string `json:"postal_code" validate:"omitempty,max=20"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
}

// createBusinessHandler godoc
//
//	@Summary		Create a business
//	@Description	Creates a business listing owned by the signed-in user. New listings start out pending.
//	@Tags			businesses
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateBusinessPayload	true	"Business fields"
//	@Success		201		{object}	businesses.Business
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses [post]
func (app *application) createBusinessHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload CreateBusinessPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	business := &businesses.Business{
		OwnerID:     user.ID,
		CategoryID:  payload.CategoryID,
		Name:        payload.Name,
		Description: payload.Description,
		Phone:       payload.Phone,
		Email:       payload.Email,
		Website:     payload.Website,
		Address:     payload.Address,
		City:        payload.City,
		State:       payload.State,
		PostalCode:  payload.PostalCode,
		Country:     payload.Country,
	}

	if err := app.store.Businesses.Create(r.Context(), business); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, business); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateBusinessPayload struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	CategoryID  *int64  `json:"category_id"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive pending"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Website     *string `json:"website" validate:"omitempty,url,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	PostalCode  *string `json:"postal_code" validate:"omitempty,max=20"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
}

func (p UpdateBusinessPayload) updates() map[string]any {
	updates := map[string]any{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.CategoryID != nil {
		updates["category_id"] = *p.CategoryID
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if p.Phone != nil {
		updates["phone"] = *p.Phone
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.Website != nil {
		updates["website"] = *p.Website
	}
	if p.Address != nil {
		updates["address"] = *p.Address
	}
	if p.City != nil {
		updates["city"] = *p.City
	}
	if p.State != nil {
		updates["state"] = *p.State
	}
	if p.PostalCode != nil {
		updates["postal_code"] = *p.PostalCode
	}
	if p.Country != nil {
		updates["country"] = *p.Country
	}
	return updates
}

// updateBusinessHandler godoc
//
//	@Summary		Update a business
//	@Description	Updates fields on a business the signed-in user owns
//	@Tags			businesses
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		int						true	"Business ID"
//	@Param			payload		body		UpdateBusinessPayload	true	"Fields to update"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID} [put]
func (app *application) updateBusinessHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpdateBusinessPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updates := payload.updates()
	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}

	err = app.store.Businesses.Update(r.Context(), businessID, user.ID, updates)
	if err != nil {
		switch err {
		case businesses.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "business updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteBusinessHandler godoc
//
//	@Summary		Delete a business
//	@Description	Deletes a business the signed-in user owns
//	@Tags			businesses
//	@Produce		json
//	@Param			businessID	path		int	true	"Business ID"
//	@Success		204			{string}	string	"No Content"
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID} [delete]
func (app *application) deleteBusinessHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.store.Businesses.Delete(r.Context(), businessID, user.ID)
	if err != nil {
		switch err {
		case businesses.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// updateBusinessImageHandler godoc
//
//	@Summary		Upload the primary image of a business
//	@Tags			businesses
//	@Accept			mpfd
//	@Produce		json
//	@Param			businessID	path		int		true	"Business ID"
//	@Param			image		formData	file	true	"Image file, size limit is 5MB"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/image [put]
func (app *application) updateBusinessImageHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(5 << 20); err != nil { // 5 MB
		app.badRequestResponse(w, r, err)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	url, err := app.uploadToCloudinary(file, "businesses", "")
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	err = app.store.Businesses.SetImage(r.Context(), businessID, user.ID, url)
	if err != nil {
		switch err {
		case businesses.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"image_url": url}); err != nil {
		app.internalServerError(w, r, err)
	}
}
