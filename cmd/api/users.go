package main

import (
	"net/http"

	"lokal/internal/domain/users"

	"github.com/go-chi/chi/v5"
)

type userKey string

const userCtx userKey = "user"

func getUserFromContext(r *http.Request) *users.User {
	if user, ok := r.Context().Value(userCtx).(*users.User); ok {
		return user
	}
	return nil
}

// getProfileHandler godoc
//
//	@Summary		Get a public profile
//	@Description	Fetches the public profile for a username
//	@Tags			users
//	@Produce		json
//	@Param			username	path		string	true	"Username"
//	@Success		200			{object}	users.Profile
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Router			/users/{username} [get]
func (app *application) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := app.store.Users.GetProfileByUsername(r.Context(), username)
	if err != nil {
		switch err {
		case users.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, profile); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateProfilePayload struct {
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Bio      *string `json:"bio" validate:"omitempty,max=500"`
}

// updateProfileHandler godoc
//
//	@Summary		Update own profile
//	@Description	Updates the signed-in user's display name and bio
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		UpdateProfilePayload	true	"Profile fields"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users [put]
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload UpdateProfilePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err := app.store.Users.UpdateProfile(r.Context(), user.ID, payload.FullName, payload.Bio)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "profile updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadAvatarHandler godoc
//
//	@Summary		Upload avatar
//	@Description	Uploads the signed-in user's avatar and saves the URL in the database
//	@Tags			users
//	@Accept			mpfd
//	@Produce		json
//	@Param			avatar	formData	file	true	"Avatar file, size limit is 2MB"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	error	"Unable to parse form or retrieve file"
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/avatar [post]
func (app *application) uploadAvatarHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	err := r.ParseMultipartForm(2 << 20) // 2 MB
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	file, fileHeader, err := r.FormFile("avatar")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	app.logger.Infow("uploading avatar", "user_id", user.ID, "filename", fileHeader.Filename)

	// Replace the previous avatar asset if there was one.
	oldURL, err := app.store.Users.GetAvatarURL(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	url, err := app.uploadToCloudinary(file, "avatars", "")
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Users.SetAvatar(r.Context(), user.ID, url); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if oldURL != nil {
		if err := app.deletePhotoFromCloudinary(*oldURL); err != nil {
			app.logger.Warnw("failed to delete old avatar", "error", err)
		}
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"avatar_url": url}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteAccountHandler godoc
//
//	@Summary		Delete own account
//	@Description	Deletes the signed-in user's account and everything attached to it
//	@Tags			users
//	@Produce		json
//	@Success		204	{string}	string	"No Content"
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users [delete]
func (app *application) deleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := app.store.Users.Delete(r.Context(), user.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
