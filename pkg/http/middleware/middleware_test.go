package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	xlogger "github.com/atarantas86/edgefinder2/pkg/logger"

	"github.com/labstack/echo/v4"
)

func TestRecoverConvertsPanicTo500(t *testing.T) {
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	e := echo.New()
	e.Use(Recover(l))
	e.GET("/boom", func(c echo.Context) error {
		panic("kaput")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal Server Error") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRecoverNilLoggerStillRecovers(t *testing.T) {
	e := echo.New()
	e.Use(Recover(nil))
	e.GET("/boom", func(c echo.Context) error {
		panic("kaput")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestRequestLoggingPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogging(nil))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("middleware altered the response: %d %q", rec.Code, rec.Body.String())
	}
}
