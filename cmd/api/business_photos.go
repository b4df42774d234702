package main

import (
	"errors"
	"net/http"

	"lokal/internal/domain/businesses"
)

// listBusinessPhotosHandler godoc
//
//	@Summary		List photos of a business
//	@Tags			businesses
//	@Produce		json
//	@Param			businessID	path		int	true	"Business ID"
//	@Success		200			{array}		businesses.Photo
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/businesses/{businessID}/photos [get]
func (app *application) listBusinessPhotosHandler(w http.ResponseWriter, r *http.Request) {
	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	photos, err := app.store.Businesses.ListPhotos(r.Context(), businessID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, photos); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadBusinessPhotoHandler godoc
//
//	@Summary		Upload photos to a business gallery
//	@Description	Uploads up to five photos at once. Only the business owner can add photos.
//	@Tags			businesses
//	@Accept			mpfd
//	@Produce		json
//	@Param			businessID	path		int		true	"Business ID"
//	@Param			photos		formData	file	true	"Photo files, total size limit is 10MB"
//	@Param			caption		formData	string	false	"Caption applied to every uploaded photo"
//	@Success		201			{object}	map[string][]string
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/photos [post]
func (app *application) uploadBusinessPhotoHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
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

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10 MB
		app.badRequestResponse(w, r, err)
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		app.badRequestResponse(w, r, errors.New("no photos provided"))
		return
	}
	if len(files) > 5 {
		app.badRequestResponse(w, r, errors.New("at most 5 photos per upload"))
		return
	}

	urls, err := app.uploadBusinessImages(files, businessID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	var caption *string
	if c := r.FormValue("caption"); c != "" {
		caption = &c
	}

	for _, url := range urls {
		photo := &businesses.Photo{
			BusinessID: businessID,
			URL:        url,
			Caption:    caption,
		}
		if err := app.store.Businesses.AddPhoto(r.Context(), photo); err != nil {
			app.internalServerError(w, r, err)
			return
		}
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string][]string{"urls": urls}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteBusinessPhotoHandler godoc
//
//	@Summary		Delete a photo from a business gallery
//	@Description	Removes the photo row and the Cloudinary asset. Only the business owner can delete photos.
//	@Tags			businesses
//	@Produce		json
//	@Param			businessID	path		int		true	"Business ID"
//	@Param			photo_url	query		string	true	"URL of the photo to delete"
//	@Success		204			{string}	string	"No Content"
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/businesses/{businessID}/photos [delete]
func (app *application) deleteBusinessPhotoHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	businessID, err := app.businessIDFromURL(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	photoURL := r.URL.Query().Get("photo_url")
	if photoURL == "" {
		app.badRequestResponse(w, r, errors.New("missing photo_url"))
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

	err = app.store.Businesses.DeletePhotoByURL(r.Context(), businessID, photoURL)
	if err != nil {
		switch err {
		case businesses.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.deletePhotoFromCloudinary(photoURL); err != nil {
		app.logger.Warnw("failed to delete photo asset", "url", photoURL, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}
