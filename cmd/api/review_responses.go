package main

import (
	"net/http"

	"lokal/internal/domain/responses"
	"lokal/internal/domain/reviews"
)

type ResponsePayload struct {
	Content string `json:"content" validate:"required,max=3000"`
}

// getResponseHandler godoc
//
//	@Summary		Get the business response to a review
//	@Description	Returns the response to a review, or null when the business has not responded.
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	map[string]responses.Response
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/reviews/{reviewID}/respond [get]
func (app *application) getResponseHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := app.reviewIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	resp, err := app.store.Responses.Get(r.Context(), reviewID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, map[string]*responses.Response{"response": resp}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createResponseHandler godoc
//
//	@Summary		Respond to a review
//	@Description	Posts the business response to a review. The caller needs an authorized claim on the reviewed business, and each review takes a single response.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		int				true	"Review ID"
//	@Param			payload		body		ResponsePayload	true	"Response content"
//	@Success		201			{object}	map[string]responses.Response
//	@Failure		400			{object}	error
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID}/respond [post]
func (app *application) createResponseHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	reviewID, err := app.reviewIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload ResponsePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	businessID, err := app.store.Reviews.GetBusinessID(r.Context(), reviewID)
	if err != nil {
		switch err {
		case reviews.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	role, err := app.store.Claims.RoleFor(r.Context(), businessID, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !role.Authorized() {
		app.forbiddenResponse(w, r)
		return
	}

	resp := &responses.Response{
		ReviewID: reviewID,
		UserID:   user.ID,
		Content:  payload.Content,
	}

	err = app.store.Responses.Create(r.Context(), resp)
	if err != nil {
		switch err {
		case responses.ErrConflict:
			app.conflictResponse(w, r, err)
		case responses.ErrReviewNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJSON(w, http.StatusCreated, map[string]*responses.Response{"response": resp}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// canManageResponse decides whether the caller may edit or delete the
// response: either they wrote it, or they hold an authorized claim on the
// reviewed business.
func (app *application) canManageResponse(r *http.Request, resp *responses.Response, userID int64) (bool, error) {
	if resp.UserID == userID {
		return true, nil
	}

	businessID, err := app.store.Reviews.GetBusinessID(r.Context(), resp.ReviewID)
	if err != nil {
		return false, err
	}

	role, err := app.store.Claims.RoleFor(r.Context(), businessID, userID)
	if err != nil {
		return false, err
	}

	return role.Authorized(), nil
}

// updateResponseHandler godoc
//
//	@Summary		Edit the response to a review
//	@Description	Edits the business response. Allowed for the response author or anyone with an authorized claim on the business.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		int				true	"Review ID"
//	@Param			payload		body		ResponsePayload	true	"Response content"
//	@Success		200			{object}	map[string]responses.Response
//	@Failure		400			{object}	error
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID}/respond [put]
func (app *application) updateResponseHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	reviewID, err := app.reviewIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload ResponsePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	resp, err := app.store.Responses.Get(r.Context(), reviewID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if resp == nil {
		app.notFoundResponse(w, r, responses.ErrNotFound)
		return
	}

	allowed, err := app.canManageResponse(r, resp, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !allowed {
		app.forbiddenResponse(w, r)
		return
	}

	updated, err := app.store.Responses.Update(r.Context(), reviewID, payload.Content)
	if err != nil {
		switch err {
		case responses.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJSON(w, http.StatusOK, map[string]*responses.Response{"response": updated}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteResponseHandler godoc
//
//	@Summary		Delete the response to a review
//	@Description	Deletes the business response. Allowed for the response author or anyone with an authorized claim on the business.
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID}/respond [delete]
func (app *application) deleteResponseHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	reviewID, err := app.reviewIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	resp, err := app.store.Responses.Get(r.Context(), reviewID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if resp == nil {
		app.notFoundResponse(w, r, responses.ErrNotFound)
		return
	}

	allowed, err := app.canManageResponse(r, resp, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !allowed {
		app.forbiddenResponse(w, r)
		return
	}

	err = app.store.Responses.Delete(r.Context(), reviewID)
	if err != nil {
		switch err {
		case responses.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]any{
		"success": true,
		"message": "response deleted",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
