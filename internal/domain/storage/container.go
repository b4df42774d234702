package storage

import (
	"lokal/internal/domain/businesses"
	"lokal/internal/domain/categories"
	"lokal/internal/domain/claims"
	"lokal/internal/domain/faqs"
	"lokal/internal/domain/hours"
	"lokal/internal/domain/reports"
	"lokal/internal/domain/responses"
	"lokal/internal/domain/reviews"
	"lokal/internal/domain/reviewvotes"
	"lokal/internal/domain/users"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	Users       users.Store
	Businesses  businesses.Store
	Categories  categories.Store
	Claims      claims.Store
	Reviews     reviews.Store
	ReviewVotes reviewvotes.Store
	Responses   responses.Store
	Reports     reports.Store
	Hours       hours.Store
	FAQs        faqs.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		Users:       users.NewRepository(db),
		Businesses:  businesses.NewRepository(db),
		Categories:  categories.NewRepository(db),
		Claims:      claims.NewRepository(db),
		Reviews:     reviews.NewRepository(db),
		ReviewVotes: reviewvotes.NewRepository(db),
		Responses:   responses.NewRepository(db),
		Reports:     reports.NewRepository(db),
		Hours:       hours.NewRepository(db),
		FAQs:        faqs.NewRepository(db),
	}
}
