package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lokal/internal/domain/reviews"
	"lokal/internal/domain/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReviewsHandler(t *testing.T) {
	now := time.Now()
	stub := &stubReviewStore{
		list: []reviews.Review{
			{ID: 1, BusinessID: 10, Rating: 5, Status: reviews.StatusApproved, CreatedAt: now},
			{ID: 2, BusinessID: 10, Rating: 3, Status: reviews.StatusApproved, CreatedAt: now},
		},
	}
	app := newTestApp(&storage.Container{Reviews: stub})

	t.Run("returns reviews with meta", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reviews?business_id=10&limit=20", nil)
		rr := httptest.NewRecorder()

		app.listReviewsHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Success bool             `json:"success"`
			Reviews []reviews.Review `json:"reviews"`
			Meta    struct {
				Count  int `json:"count"`
				Limit  int `json:"limit"`
				Offset int `json:"offset"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

		assert.True(t, body.Success)
		assert.Len(t, body.Reviews, 2)
		assert.Equal(t, 2, body.Meta.Count)
		assert.Equal(t, 20, body.Meta.Limit)
		assert.Equal(t, 0, body.Meta.Offset)

		require.NotNil(t, stub.gotFilter.BusinessID)
		assert.Equal(t, int64(10), *stub.gotFilter.BusinessID)
		assert.False(t, stub.gotFilter.RecentOnly())
	})

	t.Run("no filters selects recent mode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reviews?limit=50&offset=10", nil)
		rr := httptest.NewRecorder()

		app.listReviewsHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, stub.gotFilter.RecentOnly())

		var body struct {
			Meta struct {
				Limit  int `json:"limit"`
				Offset int `json:"offset"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 5, body.Meta.Limit)
		assert.Equal(t, 0, body.Meta.Offset)
	})

	t.Run("signed-in caller sets viewer", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodGet, "/v1/reviews", nil), 42)
		rr := httptest.NewRecorder()

		app.listReviewsHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, stub.gotFilter.ViewerID)
		assert.Equal(t, int64(42), *stub.gotFilter.ViewerID)
	})

	t.Run("rejects bad business_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reviews?business_id=abc", nil)
		rr := httptest.NewRecorder()

		app.listReviewsHandler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateReviewHandler(t *testing.T) {
	payload := func() *bytes.Buffer {
		return bytes.NewBufferString(`{"business_id": 10, "rating": 4, "content": "solid"}`)
	}

	t.Run("creates and returns the review", func(t *testing.T) {
		app := newTestApp(&storage.Container{Reviews: &stubReviewStore{}})

		req := withUser(httptest.NewRequest(http.MethodPost, "/v1/reviews", payload()), 7)
		rr := httptest.NewRecorder()

		app.createReviewHandler(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var body struct {
			Review reviews.Review `json:"review"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

		assert.Equal(t, int64(1), body.Review.ID)
		assert.Equal(t, int64(7), body.Review.UserID)
		assert.Equal(t, reviews.StatusApproved, body.Review.Status)
	})

	t.Run("second review for same business conflicts", func(t *testing.T) {
		app := newTestApp(&storage.Container{
			Reviews: &stubReviewStore{createErr: reviews.ErrConflict},
		})

		req := withUser(httptest.NewRequest(http.MethodPost, "/v1/reviews", payload()), 7)
		rr := httptest.NewRecorder()

		app.createReviewHandler(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("unknown business is not found", func(t *testing.T) {
		app := newTestApp(&storage.Container{
			Reviews: &stubReviewStore{createErr: reviews.ErrBusinessNotFound},
		})

		req := withUser(httptest.NewRequest(http.MethodPost, "/v1/reviews", payload()), 7)
		rr := httptest.NewRecorder()

		app.createReviewHandler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		app := newTestApp(&storage.Container{Reviews: &stubReviewStore{}})

		body := bytes.NewBufferString(`{"business_id": 10, "rating": 6}`)
		req := withUser(httptest.NewRequest(http.MethodPost, "/v1/reviews", body), 7)
		rr := httptest.NewRecorder()

		app.createReviewHandler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateReviewHandler(t *testing.T) {
	t.Run("updates own review", func(t *testing.T) {
		app := newTestApp(&storage.Container{Reviews: &stubReviewStore{}})

		body := bytes.NewBufferString(`{"id": 3, "rating": 2}`)
		req := withUser(httptest.NewRequest(http.MethodPut, "/v1/reviews", body), 7)
		rr := httptest.NewRecorder()

		app.updateReviewHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Review reviews.Review `json:"review"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.Review.ID)
		assert.Equal(t, 2, resp.Review.Rating)
	})

	t.Run("someone else's review reads as missing", func(t *testing.T) {
		app := newTestApp(&storage.Container{
			Reviews: &stubReviewStore{updateErr: reviews.ErrNotFound},
		})

		body := bytes.NewBufferString(`{"id": 3, "rating": 2}`)
		req := withUser(httptest.NewRequest(http.MethodPut, "/v1/reviews", body), 99)
		rr := httptest.NewRecorder()

		app.updateReviewHandler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("rejects empty update", func(t *testing.T) {
		app := newTestApp(&storage.Container{Reviews: &stubReviewStore{}})

		body := bytes.NewBufferString(`{"id": 3}`)
		req := withUser(httptest.NewRequest(http.MethodPut, "/v1/reviews", body), 7)
		rr := httptest.NewRecorder()

		app.updateReviewHandler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteReviewHandler(t *testing.T) {
	t.Run("deletes own review", func(t *testing.T) {
		app := newTestApp(&storage.Container{Reviews: &stubReviewStore{}})

		req := withUser(httptest.NewRequest(http.MethodDelete, "/v1/reviews?id=3", nil), 7)
		rr := httptest.NewRecorder()

		app.deleteReviewHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("missing id is a bad request", func(t *testing.T) {
		app := newTestApp(&storage.Container{Reviews: &stubReviewStore{}})

		req := withUser(httptest.NewRequest(http.MethodDelete, "/v1/reviews", nil), 7)
		rr := httptest.NewRecorder()

		app.deleteReviewHandler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown review is not found", func(t *testing.T) {
		app := newTestApp(&storage.Container{
			Reviews: &stubReviewStore{deleteErr: reviews.ErrNotFound},
		})

		req := withUser(httptest.NewRequest(http.MethodDelete, "/v1/reviews?id=3", nil), 7)
		rr := httptest.NewRecorder()

		app.deleteReviewHandler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
