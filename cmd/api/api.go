package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lokal/docs" //this is required to generate swagger docs
	"lokal/internal/auth"
	"lokal/internal/domain/storage"
	"lokal/internal/mailer"
	"lokal/internal/ratelimiter"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	logger        *zap.SugaredLogger
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	mail        mailConfig
	frontendURL string
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret          string
	refreshSecret   string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	exp       time.Duration
	fromEmail string
	smtp      smtpConfig
}

type smtpConfig struct {
	host     string
	port     int
	username string
	password string
}

type dbConfig struct {
	addr        string
	maxConns    int
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Requests that outlive this window are cancelled through ctx.Done().
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		// Public routes
		r.Route("/authentication", func(r chi.Router) {
			r.Post("/user", app.registerUserHandler)
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
		})

		r.Put("/users/activate/{token}", app.activateUserHandler)
		r.Get("/users/{username}", app.getProfileHandler)

		r.Route("/users", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Put("/", app.updateProfileHandler)
			r.Post("/avatar", app.uploadAvatarHandler)
			r.Post("/logout", app.logoutHandler)
			r.Delete("/", app.deleteAccountHandler)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", app.listCategoriesHandler)
			r.Get("/slug/{slug}", app.getCategoryBySlugHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/", app.createCategoryHandler)
				r.Put("/{categoryID}", app.updateCategoryHandler)
				r.Delete("/{categoryID}", app.deleteCategoryHandler)
			})
		})

		r.Route("/businesses", func(r chi.Router) {
			r.Get("/", app.listBusinessesHandler)
			r.Get("/search", app.searchBusinessesHandler)
			r.Get("/slug/{slug}", app.getBusinessBySlugHandler)
			r.Get("/{businessID}", app.getBusinessHandler)
			r.Get("/{businessID}/photos", app.listBusinessPhotosHandler)
			r.Get("/{businessID}/hours", app.getBusinessHoursHandler)
			r.Get("/{businessID}/faqs", app.listBusinessFAQsHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/", app.createBusinessHandler)
				r.Put("/{businessID}", app.updateBusinessHandler)
				r.Delete("/{businessID}", app.deleteBusinessHandler)
				r.Put("/{businessID}/image", app.updateBusinessImageHandler)
				r.Post("/{businessID}/photos", app.uploadBusinessPhotoHandler)
				r.Delete("/{businessID}/photos", app.deleteBusinessPhotoHandler) // ?photo_url={url}
				r.Post("/{businessID}/hours", app.upsertBusinessHoursHandler)
				r.Delete("/{businessID}/hours/{weekday}", app.deleteBusinessHoursHandler)
				r.Post("/{businessID}/faqs", app.createBusinessFAQHandler)
				r.Put("/{businessID}/faqs/{faqID}", app.updateBusinessFAQHandler)
				r.Delete("/{businessID}/faqs/{faqID}", app.deleteBusinessFAQHandler)
			})

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/claims", app.createClaimHandler)
				r.Get("/claims", app.listClaimsHandler)
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.With(app.OptionalAuthTokenMiddleware).Get("/", app.listReviewsHandler)
			r.Get("/{reviewID}/count", app.voteCountHandler)
			r.Get("/{reviewID}/respond", app.getResponseHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/", app.createReviewHandler)
				r.Put("/", app.updateReviewHandler)
				r.Delete("/", app.deleteReviewHandler) // ?id={reviewID}
				r.Post("/{reviewID}/vote", app.addVoteHandler)
				r.Delete("/{reviewID}/vote", app.removeVoteHandler)
				r.Post("/{reviewID}/report", app.reportReviewHandler)
				r.Post("/{reviewID}/respond", app.createResponseHandler)
				r.Put("/{reviewID}/respond", app.updateResponseHandler)
				r.Delete("/{reviewID}/respond", app.deleteResponseHandler)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
