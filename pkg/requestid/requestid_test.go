package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/requestid"
)

func serve(t *testing.T, header string) (seen string, rec *httptest.ResponseRecorder) {
	t.Helper()
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates new request ID when not provided", func(t *testing.T) {
		seen, rec := serve(t, "")
		require.Equal(t, http.StatusOK, rec.Code)
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		seen, rec := serve(t, "test-request-id_123")
		assert.Equal(t, "test-request-id_123", seen)
		assert.Equal(t, "test-request-id_123", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid request IDs", func(t *testing.T) {
		invalidIDs := []string{
			"test@request#id",
			"test request id",
			"test/request/id",
			"test<script>alert(1)</script>",
			strings.Repeat("a", 129),
		}
		for _, invalidID := range invalidIDs {
			seen, rec := serve(t, invalidID)
			assert.NotEqual(t, invalidID, seen)
			_, err := uuid.Parse(seen)
			assert.NoError(t, err, "id %q", invalidID)
			assert.Equal(t, seen, rec.Header().Get(requestid.Header))
		}
	})

	t.Run("accepts the maximum length", func(t *testing.T) {
		id := strings.Repeat("a", 128)
		seen, _ := serve(t, id)
		assert.Equal(t, id, seen)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", requestid.FromContext(context.Background()))
	assert.Equal(t, "abc", requestid.FromContext(requestid.WithContext(context.Background(), "abc")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "with id")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "without id")
	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "request_id")
}
