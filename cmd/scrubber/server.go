package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"

	"github.com/haven-social/scrubber/capability"
	"github.com/haven-social/scrubber/engine"
	"github.com/haven-social/scrubber/precheck"
	"github.com/haven-social/scrubber/sanitize"
)

type Server struct {
	logger   *slog.Logger
	eng      *engine.Engine
	analyzer precheck.Analyzer
	echo     *echo.Echo
}

func NewServer(eng *engine.Engine, logger *slog.Logger) *Server {
	return &Server{
		logger:   logger,
		eng:      eng,
		analyzer: precheck.Analyzer{Dict: capability.NewGoAwayDict()},
	}
}

type healthStatus struct {
	Status string `json:"status"`
}

type textBody struct {
	Text string `json:"text"`
}

type sanitizeResponse struct {
	Text string `json:"text"`
}

func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, healthStatus{Status: "ok"})
}

// POST /scan accepts a ModerationInput and returns the full verdict. Empty
// text is a normal REJECT result, not an HTTP error.
func (s *Server) handleScan(c echo.Context) error {
	var input engine.ModerationInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	scanRequests.Inc()
	res := s.eng.Scan(c.Request().Context(), input)
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handlePrecheck(c echo.Context) error {
	var body textBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	precheckRequests.Inc()
	return c.JSON(http.StatusOK, s.analyzer.Analyze(body.Text))
}

func (s *Server) handleSanitize(c echo.Context) error {
	var body textBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	sanitizeRequests.Inc()
	return c.JSON(http.StatusOK, sanitizeResponse{Text: sanitize.Sanitize(body.Text)})
}

func (s *Server) RunAPI(listen string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(s.logger))
	e.Use(middleware.Recover())

	e.GET("/_health", s.handleHealthCheck)
	e.POST("/scan", s.handleScan)
	e.POST("/precheck", s.handlePrecheck)
	e.POST("/sanitize", s.handleSanitize)
	s.echo = e

	s.logger.Info("starting moderation API daemon", "bind", listen)
	return e.Start(listen)
}

func (s *Server) RunMetrics(listen string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(listen, mux)
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.echo == nil {
		return nil
	}
	return s.echo.Shutdown(ctx)
}
