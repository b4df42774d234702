package main

import (
	"net/http"
	"strconv"

	"lokal/internal/domain/reviewvotes"

	"github.com/go-chi/chi/v5"
)

func (app *application) reviewIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
}

// addVoteHandler godoc
//
//	@Summary		Mark a review helpful
//	@Description	Records a helpful vote, one per user and review. Returns the refreshed vote count.
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID}/vote [post]
func (app *application) addVoteHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	reviewID, err := app.reviewIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	count, err := app.store.ReviewVotes.Add(r.Context(), reviewID, user.ID)
	if err != nil {
		switch err {
		case reviewvotes.ErrReviewNotFound:
			app.notFoundResponse(w, r, err)
		case reviewvotes.ErrAlreadyVoted:
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]any{
		"success":       true,
		"helpful_votes": count,
		"user_voted":    true,
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// removeVoteHandler godoc
//
//	@Summary		Withdraw a helpful vote
//	@Description	Removes the caller's helpful vote. Removing a vote that was never cast still succeeds.
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID}/vote [delete]
func (app *application) removeVoteHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	reviewID, err := app.reviewIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	count, err := app.store.ReviewVotes.Remove(r.Context(), reviewID, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]any{
		"success":       true,
		"helpful_votes": count,
		"user_voted":    false,
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// voteCountHandler godoc
//
//	@Summary		Get the helpful vote count of a review
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/reviews/{reviewID}/count [get]
func (app *application) voteCountHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := app.reviewIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	count, err := app.store.ReviewVotes.Count(r.Context(), reviewID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]any{
		"success": true,
		"count":   count,
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
