package observability

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danmuck/telestamp/internal/protocol/cp56"
	"github.com/danmuck/telestamp/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("stampd-a", "POST", "/v1/decode", 200, 12*time.Millisecond)
	RecordDecode(cp56.New(24, 1, 1, 0, 0, 0), false)
	RecordDecode(cp56.Time{}, true)
	RecordParse(nil)
	RecordParse(fmt.Errorf("wrapped: %w", cp56.ErrMissingNumber))
}

func TestResultLabels(t *testing.T) {
	if got := DecodeResult(cp56.Time{}, true); got != "short" {
		t.Fatalf("unexpected decode label: %q", got)
	}
	if got := DecodeResult(cp56.Time{}, false); got != "invalid" {
		t.Fatalf("unexpected decode label: %q", got)
	}
	if got := DecodeResult(cp56.New(0, 1, 1, 0, 0, 0), false); got != "valid" {
		t.Fatalf("unexpected decode label: %q", got)
	}
	_, err := cp56.Scan("x", "%Z")
	if got := ParseResult(err); got != "unknown_directive" {
		t.Fatalf("unexpected parse label: %q", got)
	}
	_, err = cp56.Scan("1/", "%Y-")
	if got := ParseResult(err); got != "literal_mismatch" {
		t.Fatalf("unexpected parse label: %q", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger(zerolog.Nop()))
	r.Use(RequestMetricsMiddleware("test"))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ctxRequestID))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := rr.Header().Get(HeaderRequestID)
	if generated == "" || rr.Body.String() != generated {
		t.Fatalf("expected generated id, header=%q body=%q", generated, rr.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if got := rr.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Fatalf("expected propagated id, got %q", got)
	}
}
