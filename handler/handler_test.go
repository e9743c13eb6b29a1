package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/logger"
)

type greetRequest struct {
	Name string
}

func bindName(r *http.Request, v any) error {
	name := r.URL.Query().Get("name")
	if name == "" {
		return handler.NewHTTPError(http.StatusBadRequest, "missing_name")
	}
	v.(*greetRequest).Name = name
	return nil
}

func decodeEnvelope(t *testing.T, body string) handler.JSONResponse {
	t.Helper()
	var resp handler.JSONResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := func(ctx handler.Context, req greetRequest) handler.Response {
		return handler.JSON(map[string]string{"greeting": "hello " + req.Name})
	}

	t.Run("binds and renders", func(t *testing.T) {
		h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](bindName))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?name=ann", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":{"greeting":"hello ann"}}`, rec.Body.String())
	})

	t.Run("binder error goes to default error handler", func(t *testing.T) {
		h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](bindName))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "missing_name", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("nil response", func(t *testing.T) {
		var got error
		h := handler.Wrap(
			func(handler.Context, greetRequest) handler.Response { return nil },
			handler.WithErrorHandler[handler.Context, greetRequest](func(_ handler.Context, err error) { got = err }),
		)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		var order []string
		mark := func(name string) handler.Decorator[handler.Context, greetRequest] {
			return func(next handler.HandlerFunc[handler.Context, greetRequest]) handler.HandlerFunc[handler.Context, greetRequest] {
				return func(ctx handler.Context, req greetRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(greet, handler.WithDecorators(mark("outer"), mark("inner")))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("context exposes request", func(t *testing.T) {
		var method string
		h := handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
			method = ctx.Request().Method
			return handler.Empty()
		})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
		assert.Equal(t, http.MethodDelete, method)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	render := func(resp handler.Response) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		return rec
	}

	t.Run("validation error", func(t *testing.T) {
		verr := handler.NewValidationError()
		verr.Add("age", "Age is required")
		rec := render(handler.JSONError(verr, handler.WithJSONMessage("Age is required")))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeEnvelope(t, rec.Body.String())
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, "Age is required", body.Error.Message)
		assert.Equal(t, map[string][]string{"age": {"Age is required"}}, body.Error.Details)
	})

	t.Run("wrapped http error", func(t *testing.T) {
		err := fmt.Errorf("%w: body missing", handler.ErrUnsupportedMediaType)
		rec := render(handler.JSONError(err))

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		body := decodeEnvelope(t, rec.Body.String())
		assert.Equal(t, "unsupported_media_type", body.Error.Code)
		assert.Equal(t, "unsupported_media_type: body missing", body.Error.Message)
	})

	t.Run("unknown error hides its text", func(t *testing.T) {
		rec := render(handler.JSON(errors.New("db exploded")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeEnvelope(t, rec.Body.String())
		assert.Equal(t, "internal_error", body.Error.Code)
		assert.NotContains(t, rec.Body.String(), "db exploded")
	})

	t.Run("status and meta options", func(t *testing.T) {
		rec := render(handler.JSON("ok",
			handler.WithJSONStatus(http.StatusCreated),
			handler.WithJSONMeta(map[string]any{"version": "1"}),
		))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"data":"ok","meta":{"version":"1"}}`, rec.Body.String())
	})
}

func TestNewJSONErrorHandler(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))
	onError := handler.NewJSONErrorHandler(log)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	onError(handler.NewContext(rec, req), handler.NewHTTPError(http.StatusBadRequest, "missing_field"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_field", decodeEnvelope(t, rec.Body.String()).Error.Code)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status_code":400`)
	assert.Contains(t, buf.String(), `"path":"/register"`)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	verr := handler.NewValidationError()
	assert.True(t, verr.IsEmpty())
	assert.Equal(t, "validation failed", verr.Error())

	verr.Add("email", "Email is required")
	verr.Add("email", "second")
	assert.False(t, verr.IsEmpty())
	assert.True(t, verr.Has("email"))
	assert.False(t, verr.Has("name"))
	assert.Equal(t, "Email is required", verr.Get("email"))
	assert.Equal(t, "validation failed: email: Email is required", verr.Error())
}
