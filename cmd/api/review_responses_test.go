package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lokal/internal/domain/claims"
	"lokal/internal/domain/responses"
	"lokal/internal/domain/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerID, strangerID = int64(20), int64(99)

func responseTestApp(respStore *stubResponseStore) *application {
	return newTestApp(&storage.Container{
		Reviews:   &stubReviewStore{businessID: 10},
		Responses: respStore,
		Claims: &stubClaimStore{
			roles: map[int64]claims.Role{ownerID: claims.RoleOwner},
		},
	})
}

func respondRequest(t *testing.T, method string, userID int64) *http.Request {
	t.Helper()
	body := bytes.NewBufferString(`{"content": "thanks for the feedback"}`)
	req := withUser(httptest.NewRequest(method, "/v1/reviews/5/respond", body), userID)
	return withURLParam(req, "reviewID", "5")
}

func TestCreateResponseHandler(t *testing.T) {
	t.Run("claim holder can respond", func(t *testing.T) {
		app := responseTestApp(&stubResponseStore{})

		rr := httptest.NewRecorder()
		app.createResponseHandler(rr, respondRequest(t, http.MethodPost, ownerID))

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Response responses.Response `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.Response.ID)
		assert.Equal(t, ownerID, resp.Response.UserID)
	})

	t.Run("caller without a claim is forbidden", func(t *testing.T) {
		app := responseTestApp(&stubResponseStore{})

		rr := httptest.NewRecorder()
		app.createResponseHandler(rr, respondRequest(t, http.MethodPost, strangerID))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("second response conflicts", func(t *testing.T) {
		app := responseTestApp(&stubResponseStore{createErr: responses.ErrConflict})

		rr := httptest.NewRecorder()
		app.createResponseHandler(rr, respondRequest(t, http.MethodPost, ownerID))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestUpdateResponseHandler(t *testing.T) {
	existing := func() *stubResponseStore {
		return &stubResponseStore{
			existing: &responses.Response{ID: 1, ReviewID: 5, UserID: 30},
		}
	}

	t.Run("original author can edit", func(t *testing.T) {
		app := responseTestApp(existing())

		rr := httptest.NewRecorder()
		app.updateResponseHandler(rr, respondRequest(t, http.MethodPut, 30))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Response responses.Response `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "thanks for the feedback", resp.Response.Content)
	})

	t.Run("claim holder can edit someone else's response", func(t *testing.T) {
		app := responseTestApp(existing())

		rr := httptest.NewRecorder()
		app.updateResponseHandler(rr, respondRequest(t, http.MethodPut, ownerID))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		app := responseTestApp(existing())

		rr := httptest.NewRecorder()
		app.updateResponseHandler(rr, respondRequest(t, http.MethodPut, strangerID))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing response is not found", func(t *testing.T) {
		app := responseTestApp(&stubResponseStore{})

		rr := httptest.NewRecorder()
		app.updateResponseHandler(rr, respondRequest(t, http.MethodPut, ownerID))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteResponseHandler(t *testing.T) {
	existing := func() *stubResponseStore {
		return &stubResponseStore{
			existing: &responses.Response{ID: 1, ReviewID: 5, UserID: 30},
		}
	}

	t.Run("claim holder can delete", func(t *testing.T) {
		app := responseTestApp(existing())

		req := withUser(httptest.NewRequest(http.MethodDelete, "/v1/reviews/5/respond", nil), ownerID)
		req = withURLParam(req, "reviewID", "5")
		rr := httptest.NewRecorder()

		app.deleteResponseHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Success bool `json:"success"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		app := responseTestApp(existing())

		req := withUser(httptest.NewRequest(http.MethodDelete, "/v1/reviews/5/respond", nil), strangerID)
		req = withURLParam(req, "reviewID", "5")
		rr := httptest.NewRecorder()

		app.deleteResponseHandler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestGetResponseHandler(t *testing.T) {
	t.Run("returns null when nothing was posted", func(t *testing.T) {
		app := responseTestApp(&stubResponseStore{})

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/5/respond", nil)
		req = withURLParam(req, "reviewID", "5")
		rr := httptest.NewRecorder()

		app.getResponseHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Response *responses.Response `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Nil(t, resp.Response)
	})
}
