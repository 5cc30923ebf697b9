package api

import (
	"net/http"

	"github.com/atarantas86/edgefinder2/internal/chart"
	models "github.com/atarantas86/edgefinder2/internal/domain/models"
	"github.com/atarantas86/edgefinder2/internal/usecase"
	xhttp "github.com/atarantas86/edgefinder2/pkg/http"
	xlogger "github.com/atarantas86/edgefinder2/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardEchoHandler exposes the dashboard views and rendered charts
// over Echo. Engine failures surface as 502 with the fetch layer's
// user-facing message; validation failures as 400.
type DashboardEchoHandler struct {
	logger *xlogger.Logger
	dash   *usecase.Dashboard
}

func NewDashboardEchoHandler(logger *xlogger.Logger, dash *usecase.Dashboard) *DashboardEchoHandler {
	return &DashboardEchoHandler{logger: logger, dash: dash}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/dashboard")
	g.GET("/signals", h.Signals)
	g.GET("/performance", h.Performance)
	g.GET("/history", h.History)
	g.GET("/backtest", h.Backtest)
	g.GET("/charts/equity.svg", h.EquityChart)
	g.GET("/charts/results.svg", h.ResultsChart)
	g.GET("/charts/calibration.svg", h.CalibrationChart)
	g.GET("/charts/confidence.svg", h.ConfidenceChart)

	e.GET("/healthz", h.Health)
}

func (h *DashboardEchoHandler) Signals(c echo.Context) error {
	req := &models.SignalsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	view, err := h.dash.Signals(c.Request().Context(), req.League)
	if err != nil {
		h.logger.Error("signals usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(err.Error()))
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *DashboardEchoHandler) Performance(c echo.Context) error {
	view, err := h.dash.Performance(c.Request().Context())
	if err != nil {
		h.logger.Error("performance usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(err.Error()))
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *DashboardEchoHandler) History(c echo.Context) error {
	view, err := h.dash.History(c.Request().Context())
	if err != nil {
		h.logger.Error("history usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(err.Error()))
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *DashboardEchoHandler) Backtest(c echo.Context) error {
	req := &models.BacktestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	view, err := h.dash.Backtest(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("backtest usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(err.Error()))
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *DashboardEchoHandler) EquityChart(c echo.Context) error {
	req := &models.BacktestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	svg, err := h.dash.EquitySVG(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("equity chart error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(err.Error()))
	}
	return c.Blob(http.StatusOK, chart.MIMEType(), []byte(svg))
}

func (h *DashboardEchoHandler) ResultsChart(c echo.Context) error {
	svg, err := h.dash.ResultsSVG(c.Request().Context())
	if err != nil {
		h.logger.Error("results chart error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(err.Error()))
	}
	return c.Blob(http.StatusOK, chart.MIMEType(), []byte(svg))
}

func (h *DashboardEchoHandler) CalibrationChart(c echo.Context) error {
	req := &models.CalibrationRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	btReq := &models.BacktestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, btReq); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	svg, err := h.dash.CalibrationSVG(c.Request().Context(), *btReq, req.Market)
	if err != nil {
		h.logger.Error("calibration chart error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(err.Error()))
	}
	return c.Blob(http.StatusOK, chart.MIMEType(), []byte(svg))
}

func (h *DashboardEchoHandler) ConfidenceChart(c echo.Context) error {
	svg, err := h.dash.ConfidenceSVG(c.Request().Context())
	if err != nil {
		h.logger.Error("confidence chart error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(err.Error()))
	}
	return c.Blob(http.StatusOK, chart.MIMEType(), []byte(svg))
}

func (h *DashboardEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
