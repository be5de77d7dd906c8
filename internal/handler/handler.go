package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"linkguard/internal/domain"
	"linkguard/internal/service"
	"linkguard/internal/validation"
)

var (
	errInvalidBody     = errorBody("invalid request body")
	errLinkRequired    = errorBody("link is required")
	errLinksRequired   = errorBody("links required")
	errLinksShape      = errorBody("links must be array or newline/comma separated string")
	errTooManyLinks    = errorBody("too many links in one request")
	errInvalidLink     = errorBody("invalid link, use example.com or https://example.com")
	errLocalhost       = errorBody("localhost links are not allowed")
	errIPAddress       = errorBody("ip address links are not allowed")
	errInvalidHostname = errorBody("link must have a domain with a top-level domain")
	errLinkTooLong     = errorBody("link is too long")
	errNotFound        = errorBody("not found")
	errServer          = errorBody("server error")
	errBulkFailed      = errorBody("bulk insert failed")
)

func errorBody(msg string) map[string]any {
	return map[string]any{"success": false, "error": msg}
}

const (
	classifierUp   = "up"
	classifierDown = "down"
)

type Handler struct {
	urlService URLService
	health     HealthChecker
	logger     *slog.Logger
	recorder   BusinessRecorder
}

func New(
	urlService URLService,
	health HealthChecker,
	logger *slog.Logger,
	recorder BusinessRecorder,
) *Handler {
	return &Handler{
		urlService: urlService,
		health:     health,
		logger:     logger,
		recorder:   recorder,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/urls", h.ListURLs)
	api.POST("/urls", h.AddURL)
	api.POST("/urls/check", h.CheckURL)
	api.POST("/urls/bulk", h.BulkAddURLs)
	api.DELETE("/urls/:id", h.DeleteURL)
}

// Health is always 200; the body reports whether the classifier answers.
func (h *Handler) Health(c echo.Context) error {
	resp := domain.HealthResponse{Status: "ok", Classifier: classifierUp}
	if err := h.health.Health(c.Request().Context()); err != nil {
		h.logger.Warn("classifier health check failed", slog.String("error", err.Error()))
		resp.Classifier = classifierDown
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddURL(c echo.Context) error {
	var req domain.LinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	res, err := h.urlService.Add(c.Request().Context(), req.Link)
	if err != nil {
		if validation.IsValidationError(err) {
			return h.handleValidationError(c, err)
		}
		h.logger.Error("failed to add url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errServer)
	}

	if res.Status == domain.AddStatusExists {
		return c.JSON(http.StatusOK, domain.AddResponse{Success: true, Message: "Already exists", Data: res.Entry})
	}
	return c.JSON(http.StatusCreated, domain.AddResponse{Success: true, Message: "Inserted", Data: res.Entry})
}

func (h *Handler) CheckURL(c echo.Context) error {
	var req domain.LinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	res, err := h.urlService.Check(c.Request().Context(), req.Link)
	if err != nil {
		if validation.IsValidationError(err) {
			return h.handleValidationError(c, err)
		}
		h.logger.Error("failed to check url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errServer)
	}

	return c.JSON(http.StatusOK, domain.CheckResponse{Success: true, Found: res.Found, Data: res.Entry})
}

func (h *Handler) BulkAddURLs(c echo.Context) error {
	var req domain.BulkRequest
	if err := c.Bind(&req); err != nil {
		if errors.Is(err, domain.ErrInvalidLinks) {
			return c.JSON(http.StatusBadRequest, errLinksShape)
		}
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	h.recorder.RecordBusiness("bulk_request_links", float64(len(req.Links)), map[string]string{
		"client_ip": c.RealIP(),
	})

	res, err := h.urlService.BulkAdd(c.Request().Context(), req.Links)
	switch {
	case errors.Is(err, service.ErrNoLinks):
		return c.JSON(http.StatusBadRequest, errLinksRequired)
	case errors.Is(err, service.ErrTooManyLinks):
		return c.JSON(http.StatusBadRequest, errTooManyLinks)
	case err != nil:
		h.logger.Error("bulk insert failed",
			slog.Int("links", len(req.Links)),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errBulkFailed)
	}

	return c.JSON(http.StatusOK, domain.BulkResponse{Success: true, BatchResult: *res})
}

func (h *Handler) DeleteURL(c echo.Context) error {
	entry, err := h.urlService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrURLNotFound) {
			return c.JSON(http.StatusNotFound, errNotFound)
		}
		h.logger.Error("failed to delete url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errServer)
	}

	return c.JSON(http.StatusOK, domain.DeleteResponse{Success: true, Message: "Deleted", Data: *entry})
}

// ListURLs responds with a bare array of entries. A limit that does not parse
// lets the service pick the default.
func (h *Handler) ListURLs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.urlService.List(c.Request().Context(), limit)
	if err != nil {
		h.logger.Error("failed to list urls", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errServer)
	}
	if entries == nil {
		entries = []domain.Entry{}
	}

	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	reason := "format"
	body := errInvalidLink
	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		reason, body = "empty", errLinkRequired
	case errors.Is(err, validation.ErrLocalhost):
		reason, body = "localhost", errLocalhost
	case errors.Is(err, validation.ErrIPAddressHost):
		reason, body = "ip_address", errIPAddress
	case errors.Is(err, validation.ErrInvalidHostname):
		reason, body = "hostname", errInvalidHostname
	case errors.Is(err, validation.ErrLinkTooLong):
		reason, body = "too_long", errLinkTooLong
	}

	h.recorder.RecordBusiness("link_rejected", 1, map[string]string{"reason": reason})
	return c.JSON(http.StatusBadRequest, body)
}
