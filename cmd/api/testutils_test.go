package main

import (
	"context"
	"net/http"

	"lokal/internal/domain/claims"
	"lokal/internal/domain/reports"
	"lokal/internal/domain/responses"
	"lokal/internal/domain/reviews"
	"lokal/internal/domain/storage"
	"lokal/internal/domain/users"
	"lokal/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestApp(store *storage.Container) *application {
	return &application{
		config: config{
			env:         "test",
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		store:  store,
		logger: zap.NewNop().Sugar(),
	}
}

// withUser mimics AuthTokenMiddleware by placing the user on the request
// context directly.
func withUser(r *http.Request, userID int64) *http.Request {
	user := &users.User{ID: userID, Username: "tester"}
	return r.WithContext(context.WithValue(r.Context(), userCtx, user))
}

// withURLParam injects a chi route parameter without mounting the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// stubReviewStore satisfies reviews.Store with canned returns.
type stubReviewStore struct {
	list       []reviews.Review
	review     *reviews.Review
	businessID int64
	createErr  error
	updateErr  error
	deleteErr  error
	getBizErr  error

	gotFilter reviews.Filter
}

func (s *stubReviewStore) List(_ context.Context, f reviews.Filter) ([]reviews.Review, error) {
	s.gotFilter = f
	return s.list, nil
}

func (s *stubReviewStore) GetByID(_ context.Context, id int64) (*reviews.Review, error) {
	if s.review == nil {
		return nil, reviews.ErrNotFound
	}
	return s.review, nil
}

func (s *stubReviewStore) GetBusinessID(_ context.Context, _ int64) (int64, error) {
	if s.getBizErr != nil {
		return 0, s.getBizErr
	}
	return s.businessID, nil
}

func (s *stubReviewStore) Create(_ context.Context, review *reviews.Review, _ []string) error {
	if s.createErr != nil {
		return s.createErr
	}
	review.ID = 1
	review.Status = reviews.StatusApproved
	return nil
}

func (s *stubReviewStore) Update(_ context.Context, id, userID int64, rating *int, content *string, _ []string) (*reviews.Review, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	updated := &reviews.Review{ID: id, UserID: userID, Status: reviews.StatusApproved}
	if rating != nil {
		updated.Rating = *rating
	}
	updated.Content = content
	return updated, nil
}

func (s *stubReviewStore) Delete(_ context.Context, _, _ int64) error {
	return s.deleteErr
}

// stubVoteStore satisfies reviewvotes.Store.
type stubVoteStore struct {
	count     int
	addErr    error
	removeErr error
}

func (s *stubVoteStore) Add(_ context.Context, _, _ int64) (int, error) {
	if s.addErr != nil {
		return 0, s.addErr
	}
	return s.count, nil
}

func (s *stubVoteStore) Remove(_ context.Context, _, _ int64) (int, error) {
	if s.removeErr != nil {
		return 0, s.removeErr
	}
	return s.count, nil
}

func (s *stubVoteStore) Count(_ context.Context, _ int64) (int, error) {
	return s.count, nil
}

// stubResponseStore satisfies responses.Store.
type stubResponseStore struct {
	existing  *responses.Response
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubResponseStore) Get(_ context.Context, _ int64) (*responses.Response, error) {
	return s.existing, nil
}

func (s *stubResponseStore) Create(_ context.Context, resp *responses.Response) error {
	if s.createErr != nil {
		return s.createErr
	}
	resp.ID = 1
	return nil
}

func (s *stubResponseStore) Update(_ context.Context, reviewID int64, content string) (*responses.Response, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &responses.Response{ID: 1, ReviewID: reviewID, Content: content}, nil
}

func (s *stubResponseStore) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

// stubClaimStore satisfies claims.Store with a fixed role per user.
type stubClaimStore struct {
	roles map[int64]claims.Role
}

func (s *stubClaimStore) Create(_ context.Context, _ *claims.Claim) error { return nil }

func (s *stubClaimStore) ListByUser(_ context.Context, _ int64) ([]claims.Claim, error) {
	return nil, nil
}

func (s *stubClaimStore) RoleFor(_ context.Context, _, userID int64) (claims.Role, error) {
	return s.roles[userID], nil
}

// stubReportStore satisfies reports.Store.
type stubReportStore struct {
	createErr error
}

func (s *stubReportStore) Create(_ context.Context, _ *reports.Report) error {
	return s.createErr
}
