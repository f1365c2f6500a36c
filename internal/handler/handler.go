package handler

import (
	"github.com/careercraft-dev/career-pilot/backend/internal/config"
	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

// Repository is the slice of the persistence layer the handlers use.
// *repository.Repository satisfies it; tests substitute an in-memory one.
type Repository interface {
	ReadStore() (*domain.Store, error)
	WriteStore(store *domain.Store) error
	ExportStore() ([]byte, error)
	ReadCatalog() (*domain.Catalog, error)
	WriteCatalog(catalog *domain.Catalog) error
}

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.currentUser)

		r.Route("/my-info", func(r chi.Router) {
			r.Get("/", h.GetMyInfo)
			r.Post("/progress", h.AdjustMyProgress)
			r.Get("/history", h.GetMyHistory)
			r.Get("/theme", h.GetMyTheme)
			r.Put("/theme", h.SetMyTheme)
		})

		r.Route("/roles", func(r chi.Router) {
			r.Use(h.catalog)
			r.Get("/", h.GetAllRoles)
			r.Post("/", h.CreateRole)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.role)
				r.Post("/save", h.SaveRole)
				r.Delete("/save", h.RemoveRole)
			})
		})

		r.With(h.catalog).Get("/recommendation", h.GetRecommendation)
		r.Get("/resources", h.GetResources)

		r.Route("/store", func(r chi.Router) {
			r.Get("/export", h.ExportStore)
			r.Post("/import", h.ImportStore)
		})
	})
}
