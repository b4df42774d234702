package main

import (
	"net/http"
	"strconv"

	"lokal/internal/domain/businesses"
	"lokal/internal/domain/categories"

	"github.com/go-chi/chi/v5"
)

// listCategoriesHandler godoc
//
//	@Summary		List categories
//	@Description	Lists all categories with their business counts
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}		categories.Category
//	@Failure		500	{object}	error
//	@Router			/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Categories.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCategoryBySlugHandler godoc
//
//	@Summary		Get a category by slug
//	@Tags			categories
//	@Produce		json
//	@Param			slug	path		string	true	"Category slug"
//	@Success		200		{object}	categories.Category
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Router			/categories/slug/{slug} [get]
func (app *application) getCategoryBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	category, err := app.store.Categories.GetBySlug(r.Context(), slug)
	if err != nil {
		switch err {
		case categories.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CategoryPayload struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string `json:"image" validate:"omitempty,url"`
}

// createCategoryHandler godoc
//
//	@Summary		Create a category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CategoryPayload	true	"Category fields"
//	@Success		201		{object}	categories.Category
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var payload CategoryPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category := &categories.Category{
		Name:        payload.Name,
		Slug:        businesses.Slugify(payload.Name),
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
	}

	err := app.store.Categories.Create(r.Context(), category)
	if err != nil {
		switch err {
		case categories.ErrDuplicateSlug:
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCategoryHandler godoc
//
//	@Summary		Update a category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			categoryID	path		int				true	"Category ID"
//	@Param			payload		body		CategoryPayload	true	"Category fields"
//	@Success		200			{object}	categories.Category
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/categories/{categoryID} [put]
func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload CategoryPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category := &categories.Category{
		ID:          categoryID,
		Name:        payload.Name,
		Slug:        businesses.Slugify(payload.Name),
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
	}

	err = app.store.Categories.Update(r.Context(), category)
	if err != nil {
		switch err {
		case categories.ErrNotFound:
			app.notFoundResponse(w, r, err)
		case categories.ErrDuplicateSlug:
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCategoryHandler godoc
//
//	@Summary		Delete a category
//	@Tags			categories
//	@Produce		json
//	@Param			categoryID	path		int	true	"Category ID"
//	@Success		204			{string}	string	"No Content"
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/categories/{categoryID} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.store.Categories.Delete(r.Context(), categoryID)
	if err != nil {
		switch err {
		case categories.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
