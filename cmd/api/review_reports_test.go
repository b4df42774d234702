package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lokal/internal/domain/reports"
	"lokal/internal/domain/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportRequest(t *testing.T) *http.Request {
	t.Helper()
	body := bytes.NewBufferString(`{"reason": "spam"}`)
	req := withUser(httptest.NewRequest(http.MethodPost, "/v1/reviews/5/report", body), 7)
	return withURLParam(req, "reviewID", "5")
}

func TestReportReviewHandler(t *testing.T) {
	t.Run("reports the review", func(t *testing.T) {
		app := newTestApp(&storage.Container{Reports: &stubReportStore{}})

		rr := httptest.NewRecorder()
		app.reportReviewHandler(rr, reportRequest(t))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "review reported", resp.Message)
	})

	t.Run("repeat report is a conflict", func(t *testing.T) {
		app := newTestApp(&storage.Container{
			Reports: &stubReportStore{createErr: reports.ErrAlreadyReported},
		})

		rr := httptest.NewRecorder()
		app.reportReviewHandler(rr, reportRequest(t))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("unknown review is not found", func(t *testing.T) {
		app := newTestApp(&storage.Container{
			Reports: &stubReportStore{createErr: reports.ErrReviewNotFound},
		})

		rr := httptest.NewRecorder()
		app.reportReviewHandler(rr, reportRequest(t))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing reason is a bad request", func(t *testing.T) {
		app := newTestApp(&storage.Container{Reports: &stubReportStore{}})

		body := bytes.NewBufferString(`{}`)
		req := withUser(httptest.NewRequest(http.MethodPost, "/v1/reviews/5/report", body), 7)
		req = withURLParam(req, "reviewID", "5")
		rr := httptest.NewRecorder()

		app.reportReviewHandler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
