package main

import (
	"net/http"

	"lokal/internal/domain/reports"
)

type ReportReviewPayload struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// reportReviewHandler godoc
//
//	@Summary		Report a review
//	@Description	Flags a review for moderation. One report per user and review; a second attempt returns 409.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		int					true	"Review ID"
//	@Param			payload		body		ReportReviewPayload	true	"Reason"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID}/report [post]
func (app *application) reportReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	reviewID, err := app.reviewIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload ReportReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	report := &reports.Report{
		ReviewID: reviewID,
		UserID:   user.ID,
		Reason:   payload.Reason,
	}

	if err := app.store.Reports.Create(r.Context(), report); err != nil {
		switch err {
		case reports.ErrAlreadyReported:
			app.conflictResponse(w, r, err)
		case reports.ErrReviewNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]any{
		"success": true,
		"message": "review reported",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
