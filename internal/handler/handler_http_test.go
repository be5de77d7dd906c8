package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkguard/internal/domain"
	"linkguard/internal/handler"
	"linkguard/internal/handler/mocks"
	"linkguard/internal/service"
	"linkguard/internal/validation"
)

type testHandler struct {
	e        *echo.Echo
	svc      *mocks.MockURLService
	health   *mocks.MockHealthChecker
	recorder *mocks.MockBusinessRecorder
}

func newTestHandler(t *testing.T) *testHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	th := &testHandler{
		e:        echo.New(),
		svc:      mocks.NewMockURLService(t),
		health:   mocks.NewMockHealthChecker(t),
		recorder: mocks.NewMockBusinessRecorder(t),
	}
	handler.New(th.svc, th.health, logger, th.recorder).Register(th.e)
	return th
}

func (th *testHandler) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	th.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

var sampleEntry = domain.Entry{
	ID:        "Uk3xQ9aB",
	Link:      "https://example.com/",
	IsFraud:   false,
	CreatedAt: time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
}

// AddURL tests

func TestAddURL_Inserted(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().Add(mock.Anything, "example.com").
		Return(&domain.AddResult{Status: domain.AddStatusInserted, Entry: sampleEntry}, nil)

	rec := th.do(http.MethodPost, "/api/v1/urls", `{"link":"example.com"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[domain.AddResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Inserted", resp.Message)
	assert.Equal(t, sampleEntry, resp.Data)
}

func TestAddURL_AlreadyExists(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().Add(mock.Anything, "example.com").
		Return(&domain.AddResult{Status: domain.AddStatusExists, Entry: sampleEntry}, nil)

	rec := th.do(http.MethodPost, "/api/v1/urls", `{"link":"example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Already exists", decode[domain.AddResponse](t, rec).Message)
}

func TestAddURL_InvalidJSON(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(http.MethodPost, "/api/v1/urls", `invalid json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestAddURL_ValidationErrors(t *testing.T) {
	tests := []struct {
		err    error
		reason string
		body   string
	}{
		{validation.ErrEmptyURL, "empty", "link is required"},
		{fmt.Errorf("%w: parse", validation.ErrInvalidURLFormat), "format", "invalid link"},
		{validation.ErrLocalhost, "localhost", "localhost links are not allowed"},
		{validation.ErrIPAddressHost, "ip_address", "ip address links are not allowed"},
		{validation.ErrInvalidHostname, "hostname", "top-level domain"},
		{validation.ErrLinkTooLong, "too_long", "link is too long"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			th := newTestHandler(t)
			th.svc.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, tt.err)
			th.recorder.EXPECT().RecordBusiness("link_rejected", float64(1), map[string]string{"reason": tt.reason}).Return().Once()

			rec := th.do(http.MethodPost, "/api/v1/urls", `{"link":"whatever"}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}

func TestAddURL_ServiceError(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	rec := th.do(http.MethodPost, "/api/v1/urls", `{"link":"example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db error")
}

// CheckURL tests

func TestCheckURL(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().Check(mock.Anything, "example.com").
		Return(&domain.CheckResult{Found: true, Entry: &sampleEntry}, nil).Once()
	th.svc.EXPECT().Check(mock.Anything, "other.com").
		Return(&domain.CheckResult{Found: false}, nil).Once()

	rec := th.do(http.MethodPost, "/api/v1/urls/check", `{"link":"example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	found := decode[domain.CheckResponse](t, rec)
	assert.True(t, found.Found)
	require.NotNil(t, found.Data)
	assert.Equal(t, sampleEntry.ID, found.Data.ID)

	rec = th.do(http.MethodPost, "/api/v1/urls/check", `{"link":"other.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"found":false}`, rec.Body.String())
}

func TestCheckURL_Invalid(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().Check(mock.Anything, "localhost").Return(nil, validation.ErrLocalhost)
	th.recorder.EXPECT().RecordBusiness("link_rejected", mock.Anything, mock.Anything).Return()

	rec := th.do(http.MethodPost, "/api/v1/urls/check", `{"link":"localhost"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// BulkAddURLs tests

func TestBulkAddURLs(t *testing.T) {
	bodies := map[string]string{
		"array":  `{"links":["good.com","WIN-free-cash.biz","not a url","good.com"]}`,
		"string": `{"links":"good.com\nWIN-free-cash.biz,not a url\r\ngood.com"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			th := newTestHandler(t)
			th.recorder.EXPECT().RecordBusiness("bulk_request_links", float64(4), mock.Anything).Return()
			th.svc.EXPECT().BulkAdd(mock.Anything, []string{"good.com", "WIN-free-cash.biz", "not a url", "good.com"}).
				Return(&domain.BatchResult{InsertedCount: 2, InvalidInputs: []string{"not a url"}}, nil)

			rec := th.do(http.MethodPost, "/api/v1/urls/bulk", body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t,
				`{"success":true,"insertedCount":2,"invalid":["not a url"],"skippedExisting":0,"failedBatches":0}`,
				rec.Body.String())
		})
	}
}

func TestBulkAddURLs_EmptyLinks(t *testing.T) {
	bodies := map[string]string{
		"empty array":     `{"links":[]}`,
		"separators only": `{"links":","}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			th := newTestHandler(t)
			th.recorder.EXPECT().RecordBusiness("bulk_request_links", float64(0), mock.Anything).Return()
			th.svc.EXPECT().BulkAdd(mock.Anything, []string{}).
				Return(&domain.BatchResult{InvalidInputs: []string{}}, nil)

			rec := th.do(http.MethodPost, "/api/v1/urls/bulk", body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t,
				`{"success":true,"insertedCount":0,"invalid":[],"skippedExisting":0,"failedBatches":0}`,
				rec.Body.String())
		})
	}
}

func TestBulkAddURLs_BadShape(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(http.MethodPost, "/api/v1/urls/bulk", `{"links":{"a":"b"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "links must be array")
}

func TestBulkAddURLs_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"no links", service.ErrNoLinks, http.StatusBadRequest, "links required"},
		{"too many", fmt.Errorf("%w: 20 > 10", service.ErrTooManyLinks), http.StatusBadRequest, "too many links"},
		{"store down", errors.New("dial tcp: refused"), http.StatusInternalServerError, "bulk insert failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return()
			th.svc.EXPECT().BulkAdd(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := th.do(http.MethodPost, "/api/v1/urls/bulk", `{"links":[]}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

// DeleteURL tests

func TestDeleteURL(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().Delete(mock.Anything, "Uk3xQ9aB").Return(&sampleEntry, nil)

	rec := th.do(http.MethodDelete, "/api/v1/urls/Uk3xQ9aB", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[domain.DeleteResponse](t, rec)
	assert.Equal(t, "Deleted", resp.Message)
	assert.Equal(t, sampleEntry, resp.Data)
}

func TestDeleteURL_NotFound(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().Delete(mock.Anything, "missing").Return(nil, service.ErrURLNotFound)

	rec := th.do(http.MethodDelete, "/api/v1/urls/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteURL_ServiceError(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	rec := th.do(http.MethodDelete, "/api/v1/urls/abc", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ListURLs tests

func TestListURLs_Limit(t *testing.T) {
	tests := []struct {
		query string
		limit int
	}{
		{"", 0},
		{"?limit=50", 50},
		{"?limit=abc", 0},
		{"?limit=9999", 9999},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			th := newTestHandler(t)
			th.svc.EXPECT().List(mock.Anything, tt.limit).Return(nil, nil)

			rec := th.do(http.MethodGet, "/api/v1/urls"+tt.query, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestListURLs(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().List(mock.Anything, 2).Return([]domain.Entry{sampleEntry, sampleEntry}, nil)

	rec := th.do(http.MethodGet, "/api/v1/urls?limit=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Entry](t, rec), 2)
}

func TestListURLs_ServiceError(t *testing.T) {
	th := newTestHandler(t)
	th.svc.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	rec := th.do(http.MethodGet, "/api/v1/urls", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// Health tests

func TestHealth(t *testing.T) {
	th := newTestHandler(t)
	th.health.EXPECT().Health(mock.Anything).Return(nil).Once()
	th.health.EXPECT().Health(mock.Anything).Return(errors.New("connection refused")).Once()

	rec := th.do(http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","classifier":"up"}`, rec.Body.String())

	rec = th.do(http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","classifier":"down"}`, rec.Body.String())
}
