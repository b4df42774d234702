package main

import (
	"errors"
	"net/http"
	"strconv"

	"lokal/internal/domain/reviews"
	"lokal/internal/params"
)

// listReviewsHandler godoc
//
//	@Summary		List reviews
//	@Description	Lists approved reviews. Filter with ?business_id= or ?user_id=; with neither set only the 5 most recent reviews are returned. Signed-in callers see which reviews they voted helpful.
//	@Tags			reviews
//	@Produce		json
//	@Param			business_id	query		int		false	"Filter by business"
//	@Param			user_id		query		int		false	"Filter by author"
//	@Param			limit		query		int		false	"Page size, max 100"
//	@Param			offset		query		int		false	"Page offset"
//	@Param			sort_by		query		string	false	"created_at or rating"
//	@Param			sort_order	query		string	false	"asc or desc"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := reviews.Filter{}

	if v := q.Get("business_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("invalid business_id"))
			return
		}
		filter.BusinessID = &id
	}

	if v := q.Get("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("invalid user_id"))
			return
		}
		filter.UserID = &id
	}

	p := params.ParseList(q, 100, "created_at", "rating")
	filter.Limit = p.Limit
	filter.Offset = p.Offset
	filter.SortBy = p.SortBy
	filter.SortOrder = p.SortOrder

	if user := getUserFromContext(r); user != nil {
		filter.ViewerID = &user.ID
	}

	list, err := app.store.Reviews.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	limit, offset := filter.Window()
	response := map[string]any{
		"success": true,
		"reviews": list,
		"meta": map[string]int{
			"count":  len(list),
			"limit":  limit,
			"offset": offset,
		},
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateReviewPayload struct {
	BusinessID int64    `json:"business_id" validate:"required"`
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
	Content    *string  `json:"content" validate:"omitempty,max=5000"`
	Photos     []string `json:"photos" validate:"omitempty,max=5,dive,url"`
}

// createReviewHandler godoc
//
//	@Summary		Create a review
//	@Description	Creates a review for a business. One review per user and business; a second attempt returns 409.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateReviewPayload	true	"Review fields"
//	@Success		201		{object}	map[string]reviews.Review
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload CreateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := &reviews.Review{
		BusinessID: payload.BusinessID,
		UserID:     user.ID,
		Rating:     payload.Rating,
		Content:    payload.Content,
	}

	err := app.store.Reviews.Create(r.Context(), review, payload.Photos)
	if err != nil {
		switch err {
		case reviews.ErrConflict:
			app.conflictResponse(w, r, err)
		case reviews.ErrBusinessNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJSON(w, http.StatusCreated, map[string]*reviews.Review{"review": review}); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateReviewPayload struct {
	ID      int64    `json:"id" validate:"required"`
	Rating  *int     `json:"rating" validate:"omitempty,min=1,max=5"`
	Content *string  `json:"content" validate:"omitempty,max=5000"`
	Photos  []string `json:"photos" validate:"omitempty,max=5,dive,url"`
}

// updateReviewHandler godoc
//
//	@Summary		Update own review
//	@Description	Updates rating, content or photos of a review the signed-in user wrote. Sending photos replaces the whole set.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		UpdateReviewPayload	true	"Fields to update"
//	@Success		200		{object}	map[string]reviews.Review
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews [put]
func (app *application) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload UpdateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if payload.Rating == nil && payload.Content == nil && payload.Photos == nil {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}

	review, err := app.store.Reviews.Update(
		r.Context(), payload.ID, user.ID, payload.Rating, payload.Content, payload.Photos,
	)
	if err != nil {
		switch err {
		case reviews.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJSON(w, http.StatusOK, map[string]*reviews.Review{"review": review}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteReviewHandler godoc
//
//	@Summary		Delete own review
//	@Description	Deletes a review the signed-in user wrote and refreshes the business rating snapshot.
//	@Tags			reviews
//	@Produce		json
//	@Param			id	query		int	true	"Review ID"
//	@Success		200	{object}	map[string]any
//	@Failure		400	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	reviewID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review id"))
		return
	}

	err = app.store.Reviews.Delete(r.Context(), reviewID, user.ID)
	if err != nil {
		switch err {
		case reviews.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]any{
		"success": true,
		"message": "review deleted",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
