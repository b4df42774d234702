package main

import (
	"errors"
	"net/http"
	"strconv"

	"lokal/internal/domain/claims"
)

// createClaimHandler godoc
//
//	@Summary		Claim a business
//	@Description	Files an ownership claim for a business, attaching a proof document. One claim per user and business.
//	@Tags			claims
//	@Accept			mpfd
//	@Produce		json
//	@Param			business_id	formData	int		true	"Business ID"
//	@Param			role		formData	string	true	"Requested role: owner, manager or admin"
//	@Param			document	formData	file	false	"Proof of ownership, size limit is 5MB"
//	@Success		201			{object}	claims.Claim
//	@Failure		400			{object}	error
//	@Failure		409			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/claims [post]
func (app *application) createClaimHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := r.ParseMultipartForm(5 << 20); err != nil { // 5 MB
		app.badRequestResponse(w, r, err)
		return
	}

	businessID, err := strconv.ParseInt(r.FormValue("business_id"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid business_id"))
		return
	}

	role := claims.Role(r.FormValue("role"))
	if !role.Authorized() {
		app.badRequestResponse(w, r, errors.New("role must be owner, manager or admin"))
		return
	}

	var documentURL *string
	file, _, err := r.FormFile("document")
	if err == nil {
		defer file.Close()

		url, err := app.uploadToCloudinary(file, "claims", "")
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		documentURL = &url
	}

	claim := &claims.Claim{
		BusinessID:  businessID,
		UserID:      user.ID,
		Role:        role,
		DocumentURL: documentURL,
	}

	err = app.store.Claims.Create(r.Context(), claim)
	if err != nil {
		switch err {
		case claims.ErrConflict:
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, claim); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listClaimsHandler godoc
//
//	@Summary		List own claims
//	@Description	Lists the signed-in user's business claims
//	@Tags			claims
//	@Produce		json
//	@Success		200	{array}		claims.Claim
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/claims [get]
func (app *application) listClaimsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	list, err := app.store.Claims.ListByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}
