package registration

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/binder"
	"github.com/dmitrymomot/regform/pkg/logger"
	reg "github.com/dmitrymomot/regform/svc/registration"
)

// Record is a raw registration record keyed by field name.
type Record = map[string]string

// Registered is the body returned for an accepted registration.
type Registered struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Module serves the registration form endpoints.
type Module struct {
	validator *reg.Validator
	log       *slog.Logger
	newID     func() uuid.UUID
	onError   handler.ErrorHandler[handler.Context]
}

// Option configures a Module.
type Option func(*Module)

// WithValidator sets the validator used by every endpoint.
func WithValidator(v *reg.Validator) Option {
	return func(m *Module) {
		if v != nil {
			m.validator = v
		}
	}
}

// WithLogger sets the logger for request outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.log = l
		}
	}
}

// WithIDGenerator replaces uuid.New for registration ids.
func WithIDGenerator(f func() uuid.UUID) Option {
	return func(m *Module) {
		if f != nil {
			m.newID = f
		}
	}
}

func New(opts ...Option) *Module {
	m := &Module{
		validator: reg.New(),
		log:       logger.Discard(),
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(logger.Component("registration"))
	m.onError = handler.NewJSONErrorHandler(m.log)
	return m
}

// Handle returns the module router. Mount it under a prefix such as /register.
//
//	GET  /fields    ordered field names
//	POST /validate  validation result for a record
//	POST /          accept a valid record
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.NotFound(m.renderError(handler.ErrNotFound))
	r.MethodNotAllowed(m.renderError(handler.ErrMethodNotAllowed))

	r.Get("/fields", handler.Wrap(m.fields))
	r.Post("/validate", handler.Wrap(m.validate,
		handler.WithBinders[handler.Context, Record](bindRecord),
		handler.WithErrorHandler[handler.Context, Record](m.onError),
	))
	r.Post("/", handler.Wrap(m.register,
		handler.WithBinders[handler.Context, Record](bindRecord),
		handler.WithErrorHandler[handler.Context, Record](m.onError),
	))

	return r
}

// renderError answers unrouted requests with err in the JSON envelope.
func (m *Module) renderError(err handler.HTTPError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rerr := handler.JSONError(err).Render(w, r); rerr != nil {
			m.onError(handler.NewContext(w, r), rerr)
		}
	}
}

func (m *Module) fields(ctx handler.Context, _ struct{}) handler.Response {
	return handler.JSON(reg.Fields())
}

func (m *Module) validate(ctx handler.Context, rec Record) handler.Response {
	in, err := parseRecord(rec)
	if err != nil {
		return handler.JSONError(err)
	}

	res := m.validator.Validate(in)
	m.log.DebugContext(ctx, "registration validated",
		slog.Bool("is_valid", res.IsValid),
		logger.Fields(res.Fields()),
	)
	return handler.JSON(res)
}

func (m *Module) register(ctx handler.Context, rec Record) handler.Response {
	in, err := parseRecord(rec)
	if err != nil {
		return handler.JSONError(err)
	}

	res := m.validator.Validate(in)
	if !res.IsValid {
		verr := handler.NewValidationError()
		for _, f := range res.Fields() {
			verr.Add(string(f), res.Errors[f])
		}
		_, first, _ := res.FirstError()
		m.log.InfoContext(ctx, "registration rejected", logger.Fields(res.Fields()))
		return handler.JSONError(verr, handler.WithJSONMessage(first))
	}

	id := m.newID()
	m.log.InfoContext(ctx, "registration accepted",
		logger.RegistrationID(id),
		slog.String("name", in.Name),
		slog.String("age", in.Age),
		slog.String("weight", in.Weight),
		slog.String("gender", in.Gender),
		slog.String("email", in.Email),
		slog.String("username", in.Username),
	)

	return handler.JSON(Registered{
		ID:       id,
		Username: in.Username,
		Email:    in.Email,
	}, handler.WithJSONStatus(http.StatusCreated))
}

var (
	errMissingField   = handler.NewHTTPError(http.StatusBadRequest, "missing_field")
	errInvalidRequest = handler.NewHTTPError(http.StatusBadRequest, "invalid_request")
)

func parseRecord(rec Record) (reg.Input, error) {
	in, err := reg.ParseInput(rec)
	if err != nil {
		return reg.Input{}, fmt.Errorf("%w: %w", errMissingField, err)
	}
	return in, nil
}

// bindRecord decodes the body with binder.Map and maps binder failures to
// HTTP errors.
func bindRecord(r *http.Request, v any) error {
	err := binder.Map()(r, v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return fmt.Errorf("%w: %w", handler.ErrUnsupportedMediaType, err)
	case errors.Is(err, binder.ErrBodyTooLarge):
		return fmt.Errorf("%w: %w", handler.ErrRequestEntityTooLarge, err)
	default:
		return fmt.Errorf("%w: %w", errInvalidRequest, err)
	}
}
