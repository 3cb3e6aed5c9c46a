package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/battle-service/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.CORS("https://arena.example")(next)

	tests := []struct {
		name           string
		method         string
		expectedStatus int
		expectNext     bool
	}{
		{name: "preflight short-circuits", method: http.MethodOptions, expectedStatus: http.StatusNoContent, expectNext: false},
		{name: "regular request passes through", method: http.MethodGet, expectedStatus: http.StatusOK, expectNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, "/battle/", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNext, called)
			assert.Equal(t, "https://arena.example", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
		})
	}
}
