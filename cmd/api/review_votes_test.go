package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lokal/internal/domain/reviewvotes"
	"lokal/internal/domain/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type voteResponse struct {
	Success      bool `json:"success"`
	HelpfulVotes int  `json:"helpful_votes"`
	UserVoted    bool `json:"user_voted"`
}

func TestAddVoteHandler(t *testing.T) {
	t.Run("records the vote and returns the fresh count", func(t *testing.T) {
		app := newTestApp(&storage.Container{ReviewVotes: &stubVoteStore{count: 3}})

		req := withUser(httptest.NewRequest(http.MethodPost, "/v1/reviews/5/vote", nil), 7)
		req = withURLParam(req, "reviewID", "5")
		rr := httptest.NewRecorder()

		app.addVoteHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp voteResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.HelpfulVotes)
		assert.True(t, resp.UserVoted)
	})

	t.Run("double vote conflicts", func(t *testing.T) {
		app := newTestApp(&storage.Container{
			ReviewVotes: &stubVoteStore{addErr: reviewvotes.ErrAlreadyVoted},
		})

		req := withUser(httptest.NewRequest(http.MethodPost, "/v1/reviews/5/vote", nil), 7)
		req = withURLParam(req, "reviewID", "5")
		rr := httptest.NewRecorder()

		app.addVoteHandler(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("vote on unknown review is not found", func(t *testing.T) {
		app := newTestApp(&storage.Container{
			ReviewVotes: &stubVoteStore{addErr: reviewvotes.ErrReviewNotFound},
		})

		req := withUser(httptest.NewRequest(http.MethodPost, "/v1/reviews/999/vote", nil), 7)
		req = withURLParam(req, "reviewID", "999")
		rr := httptest.NewRecorder()

		app.addVoteHandler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRemoveVoteHandler(t *testing.T) {
	t.Run("withdrawing a vote reports user_voted false", func(t *testing.T) {
		app := newTestApp(&storage.Container{ReviewVotes: &stubVoteStore{count: 2}})

		req := withUser(httptest.NewRequest(http.MethodDelete, "/v1/reviews/5/vote", nil), 7)
		req = withURLParam(req, "reviewID", "5")
		rr := httptest.NewRecorder()

		app.removeVoteHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp voteResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.HelpfulVotes)
		assert.False(t, resp.UserVoted)
	})

	t.Run("removing a vote that was never cast still succeeds", func(t *testing.T) {
		app := newTestApp(&storage.Container{ReviewVotes: &stubVoteStore{count: 0}})

		req := withUser(httptest.NewRequest(http.MethodDelete, "/v1/reviews/5/vote", nil), 7)
		req = withURLParam(req, "reviewID", "5")
		rr := httptest.NewRecorder()

		app.removeVoteHandler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp voteResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 0, resp.HelpfulVotes)
		assert.False(t, resp.UserVoted)
	})
}

func TestVoteCountHandler(t *testing.T) {
	app := newTestApp(&storage.Container{ReviewVotes: &stubVoteStore{count: 4}})

	req := httptest.NewRequest(http.MethodGet, "/v1/reviews/5/count", nil)
	req = withURLParam(req, "reviewID", "5")
	rr := httptest.NewRecorder()

	app.voteCountHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 4, resp.Count)
}
