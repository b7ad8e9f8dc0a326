package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/mock"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type handlerFixture struct {
	gateway *mock.MockInventoryGateway
	sync    *mock.MockSyncService
	appInfo *mock.MockAppInfoService
	pingErr error
	router  http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		gateway: mock.NewMockInventoryGateway(ctrl),
		sync:    mock.NewMockSyncService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	health := pingFunc(func(context.Context) error { return f.pingErr })
	h := newHandler(f.gateway, f.sync, f.appInfo, health, metrics.New(), logger.Nop())
	f.router = h.Init()
	return f
}

func (f *handlerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) models.Envelope[T] {
	t.Helper()
	var env models.Envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_UsesOfflineGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	offline := mock.NewMockInventoryGateway(ctrl)
	online := mock.NewMockInventoryGateway(ctrl)

	h := NewHandler(&service.Services{OfflineGateway: offline, Gateway: online}, nil, nil, logger.Nop())

	assert.Equal(t, offline, h.gateway)
	assert.Nil(t, h.syncService)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, nil, logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, nil, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────

func TestList_Machines(t *testing.T) {
	f := newHandlerFixture(t)
	want := models.Query{Category: models.Sold, Search: "d6", SortBy: "-year", Page: 2, PageSize: 10}
	page := models.Page{Data: []models.Record{{"s_id": "S1"}}, Total: 11}

	f.gateway.EXPECT().List(gomock.Any(), want).Return(page, nil)

	rec := f.do(http.MethodGet, "/api/machines?location=sold&search=d6&sortBy=-year&page=2&pageSize=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[models.Page](t, rec)
	assert.Equal(t, 11, env.Data.Total)
	assert.Equal(t, "S1", env.Data.Data[0].ID(models.Sold))
}

func TestList_DefaultsToLocated(t *testing.T) {
	f := newHandlerFixture(t)
	f.gateway.EXPECT().List(gomock.Any(), models.Query{Category: models.Located}).Return(models.Page{Data: []models.Record{}}, nil)

	rec := f.do(http.MethodGet, "/api/machines", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"data":[],"total":0}}`, rec.Body.String())
}

func TestList_Contacts(t *testing.T) {
	f := newHandlerFixture(t)
	// location is meaningless for contacts
	f.gateway.EXPECT().List(gomock.Any(), models.Query{Category: models.Contacts, ContactID: "C1"}).Return(models.Page{}, nil)

	rec := f.do(http.MethodGet, "/api/contact?contactId=C1&location=sold", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestList_UnknownLocation(t *testing.T) {
	for _, location := range []string{"boats", "contacts"} {
		t.Run(location, func(t *testing.T) {
			f := newHandlerFixture(t)

			rec := f.do(http.MethodGet, "/api/machines?location="+location, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope[any](t, rec)
			require.NotNil(t, env.Error)
			assert.Contains(t, env.Error.Detail, ErrUnknownLocation.Error())
		})
	}
}

func TestDetail(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		category   models.Category
		id         string
		err        error
		wantStatus int
	}{
		{"located by default", "/api/machines/7", models.Located, "7", nil, http.StatusOK},
		{"archived by location", "/api/machines/A1?location=archived", models.Archived, "A1", nil, http.StatusOK},
		{"contact", "/api/contact/C1", models.Contacts, "C1", nil, http.StatusOK},
		{"missing", "/api/machines/404", models.Located, "404", fmt.Errorf("%w: located 404", service.ErrRecordNotFound), http.StatusNotFound},
		{"invalid", "/api/machines/x", models.Located, "x", fmt.Errorf("%w: bad", service.ErrInvalidDataProvided), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			var rec models.Record
			if tt.err == nil {
				rec = models.Record{tt.category.IDField(): tt.id}
			}
			f.gateway.EXPECT().Detail(gomock.Any(), tt.category, tt.id).Return(rec, tt.err)

			resp := f.do(http.MethodGet, tt.target, "")

			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.err == nil {
				env := decodeEnvelope[models.Record](t, resp)
				assert.Equal(t, tt.id, env.Data.ID(tt.category))
			}
		})
	}
}

func TestFiltersAndLocations(t *testing.T) {
	f := newHandlerFixture(t)
	f.gateway.EXPECT().Filters(gomock.Any()).Return(models.FilterOptions{"model": {{Label: "D6", Data: "D6"}}}, nil)
	f.gateway.EXPECT().Locations(gomock.Any(), "SN 1").Return(models.MachineLocations{Located: []string{"1"}, Archived: []string{}, Sold: []string{}}, nil)

	rec := f.do(http.MethodGet, "/api/machines/filters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"model":[{"label":"D6","data":"D6"}]}}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/machines/locations?serialNumber=SN+1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"located":["1"],"archived":[],"sold":[]}}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// Mutations
// ─────────────────────────────────────────────

func TestCreate_Queued(t *testing.T) {
	f := newHandlerFixture(t)
	ack := models.Ack{Queued: true, ID: "tmp-1", Record: models.Record{"m_id": "tmp-1", "model": "D6"}}
	f.gateway.EXPECT().Create(gomock.Any(), models.Located, models.Record{"model": "D6"}).Return(ack, nil)

	rec := f.do(http.MethodPost, "/api/machines", `{"model":"D6"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"queued":true,"id":"tmp-1","machine":{"m_id":"tmp-1","model":"D6"}}}`, rec.Body.String())
}

func TestCreate_InvalidJSON(t *testing.T) {
	f := newHandlerFixture(t)

	for _, body := range []string{"", "{", `["a"]`} {
		rec := f.do(http.MethodPost, "/api/contact", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestCreate_MovedWithoutSourceServer(t *testing.T) {
	f := newHandlerFixture(t)
	body := models.Record{"sourceId": "tmp-1", "machine": map[string]any{"model": "320"}}
	f.gateway.EXPECT().Create(gomock.Any(), models.Sold, body).Return(models.Ack{Queued: true, ID: "tmp-2"}, nil)

	rec := f.do(http.MethodPost, "/api/machines/sold", `{"sourceId":"tmp-1","machine":{"model":"320"}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		target   string
		category models.Category
		id       string
	}{
		{"/api/machines/7", models.Located, "7"},
		{"/api/machines/A1/archive", models.Archived, "A1"},
		{"/api/machines/S1/sold", models.Sold, "S1"},
		{"/api/contact/C1", models.Contacts, "C1"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.gateway.EXPECT().Update(gomock.Any(), tt.category, tt.id, models.Record{"note": "x"}).
				Return(models.Ack{Queued: true, ID: tt.id}, nil)

			rec := f.do(http.MethodPut, tt.target, `{"note":"x"}`)

			require.Equal(t, http.StatusOK, rec.Code)
			env := decodeEnvelope[models.Ack](t, rec)
			assert.Equal(t, models.Ack{Queued: true, ID: tt.id}, env.Data)
		})
	}
}

func TestDelete(t *testing.T) {
	f := newHandlerFixture(t)
	f.gateway.EXPECT().Delete(gomock.Any(), models.Sold, "S1").Return(models.Ack{Queued: true, ID: "S1"}, nil)
	f.gateway.EXPECT().Delete(gomock.Any(), models.Contacts, "C1").Return(models.Ack{}, models.ErrUnknownCategory)

	rec := f.do(http.MethodDelete, "/api/machines/S1?location=sold", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodDelete, "/api/contact/C1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMove(t *testing.T) {
	f := newHandlerFixture(t)
	f.gateway.EXPECT().Archive(gomock.Any(), "7", models.Record{}).Return(models.Ack{Queued: true, ID: "tmp-1"}, nil)
	f.gateway.EXPECT().Sell(gomock.Any(), "8", models.Record{"price": 10.0}).Return(models.Ack{Queued: true, ID: "tmp-2"}, nil)

	rec := f.do(http.MethodPost, "/api/machines/7/archive", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "tmp-1", decodeEnvelope[models.Ack](t, rec).Data.ID)

	rec = f.do(http.MethodPost, "/api/machines/8/sold", `{"price":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "tmp-2", decodeEnvelope[models.Ack](t, rec).Data.ID)
}

func TestMutation_StorageFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.gateway.EXPECT().Update(gomock.Any(), models.Located, "7", gomock.Any()).
		Return(models.Ack{}, fmt.Errorf("update outbox: %w", store.ErrStorage))

	rec := f.do(http.MethodPut, "/api/machines/7", `{"model":"X"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// Sync, health, version, metrics
// ─────────────────────────────────────────────

func TestPostSync(t *testing.T) {
	f := newHandlerFixture(t)
	f.sync.EXPECT().Sync(gomock.Any()).Return(models.SyncResult{Flushed: 2, Pulled: true}, nil)

	rec := f.do(http.MethodPost, "/api/sync", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"flushed":2,"pending":0,"pulled":true}}`, rec.Body.String())
}

func TestPostSync_PartialFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.sync.EXPECT().Sync(gomock.Any()).
		Return(models.SyncResult{Flushed: 1, Pending: 2}, fmt.Errorf("replay: %w", adapter.ErrNetworkUnavailable))

	rec := f.do(http.MethodPost, "/api/sync", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decodeEnvelope[models.SyncResult](t, rec)
	assert.Equal(t, models.SyncResult{Flushed: 1, Pending: 2}, env.Data)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusServiceUnavailable, env.Error.Status)
}

func TestPostSync_WithoutOrchestrator(t *testing.T) {
	h := newHandler(nil, nil, nil, nil, nil, logger.Nop())
	rec := httptest.NewRecorder()

	h.postSync(rec, httptest.NewRequest(http.MethodPost, "/api/sync", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetHealth(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"database":"sqlite"}`, rec.Body.String())

	f.pingErr = errors.New("database is locked")
	rec = f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"ok":false,"database":"unavailable"}`, rec.Body.String())
}

func TestGetVersion(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v2.0.0-beta+build.42")

	rec := f.do(http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v2.0.0-beta+build.42", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	f.gateway.EXPECT().Filters(gomock.Any()).Return(models.FilterOptions{}, nil)
	f.do(http.MethodGet, "/api/machines/filters", "")

	rec := f.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "inventory_http_requests_total")
}

// ─────────────────────────────────────────────
// Routing
// ─────────────────────────────────────────────

func TestInit_UnknownRouteReturns404(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPatch, "/api/contact/C1", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT, DELETE", rec.Header().Get("Allow"))
}

func TestInit_CompressesJSON(t *testing.T) {
	f := newHandlerFixture(t)
	records := make([]models.Record, 0, 50)
	for i := range 50 {
		records = append(records, models.Record{"m_id": fmt.Sprint(i), "model": "compressible"})
	}
	f.gateway.EXPECT().List(gomock.Any(), gomock.Any()).Return(models.Page{Data: records, Total: 50}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/machines", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.False(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("{")))
}
