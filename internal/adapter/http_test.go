// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) ServerAdapter {
	t.Helper()
	return NewHTTPServerAdapter(config.Adapter{RequestTimeout: 2 * time.Second}, logger.Nop())
}

func writeData(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
}

func readBody(t *testing.T, r *http.Request) models.Record {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var rec models.Record
	require.NoError(t, json.Unmarshal(raw, &rec))
	return rec
}

// ── List ────────────────────────────────────────────────────────────────────

func TestList_Machines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/machines", r.URL.Path)
		assert.Equal(t, "archived", r.URL.Query().Get("location"))
		assert.Equal(t, "cat", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("pageSize"))

		writeData(t, w, http.StatusOK, map[string]any{
			"data":  []map[string]any{{"a_id": "A1"}, {"a_id": "A2"}},
			"total": 102,
		})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t).List(context.Background(), srv.URL, models.Query{
		Category: models.Archived, Search: "cat", Page: 2, PageSize: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, 102, page.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "A2", page.Data[1].ID(models.Archived))
}

func TestList_Contacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("location"))
		writeData(t, w, http.StatusOK, map[string]any{"data": nil, "total": 0})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t).List(context.Background(), srv.URL+"/", models.Query{Category: models.Contacts})

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestList_NetworkUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := newTestAdapter(t).List(context.Background(), base, models.Query{Category: models.Located})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
	assert.True(t, IsUnavailable(err))
}

func TestList_BadEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>proxy login</html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).List(context.Background(), srv.URL, models.Query{Category: models.Sold})

	assert.ErrorIs(t, err, ErrDecodingResponse)
	assert.False(t, IsUnavailable(err))
}

func TestList_InvalidBase(t *testing.T) {
	_, err := newTestAdapter(t).List(context.Background(), "  ", models.Query{Category: models.Sold})

	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── Detail / Filters / Locations ────────────────────────────────────────────

func TestDetail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/machines/M404", r.URL.Path)
		assert.Equal(t, "located", r.URL.Query().Get("location"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"title":"Not Found","status":404,"detail":"machine not found"}}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).Detail(context.Background(), srv.URL, models.Located, "M404")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Not Found: machine not found")
}

func TestDetail_Contact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact/C1", r.URL.Path)
		writeData(t, w, http.StatusOK, map[string]any{"c_id": "C1", "name": "Ann"})
	}))
	defer srv.Close()

	rec, err := newTestAdapter(t).Detail(context.Background(), srv.URL, models.Contacts, "C1")

	require.NoError(t, err)
	assert.Equal(t, "Ann", rec.String("name"))
}

func TestFilters_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/machines/filters", r.URL.Path)
		writeData(t, w, http.StatusOK, map[string]any{
			"model": []map[string]any{{"label": "D6", "data": "D6"}},
		})
	}))
	defer srv.Close()

	opts, err := newTestAdapter(t).Filters(context.Background(), srv.URL)

	require.NoError(t, err)
	require.Len(t, opts["model"], 1)
	assert.Equal(t, "D6", opts["model"][0].Label)
}

func TestLocations_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/machines/locations", r.URL.Path)
		assert.Equal(t, "SN-1", r.URL.Query().Get("serialNumber"))
		writeData(t, w, http.StatusOK, map[string]any{"located": []string{"M1"}, "archived": []string{}, "sold": []string{"S3"}})
	}))
	defer srv.Close()

	loc, err := newTestAdapter(t).Locations(context.Background(), srv.URL, "SN-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"M1"}, loc.Located)
	assert.Equal(t, []string{"S3"}, loc.Sold)
}

// ── Mutations ───────────────────────────────────────────────────────────────

func TestCreate_Located(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/machines", r.URL.Path)
		assert.Empty(t, r.Header.Get("Idempotency-Key"))
		body := readBody(t, r)
		assert.Equal(t, "D6", body.String("model"))
		writeData(t, w, http.StatusCreated, map[string]any{"m_id": "M77", "model": "D6"})
	}))
	defer srv.Close()

	rec, err := newTestAdapter(t).Create(context.Background(), srv.URL, models.Located, models.Record{"model": "D6"})

	require.NoError(t, err)
	assert.Equal(t, "M77", rec.ID(models.Located))
}

func TestCreate_Unprocessable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"title":"Validation failed","status":422,"detail":"model is required"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).Create(context.Background(), srv.URL, models.Located, models.Record{})

	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.True(t, IsValidation(err))
	assert.False(t, IsUnavailable(err))
}

func TestCreate_ArchivedWithoutSource(t *testing.T) {
	_, err := newTestAdapter(t).Create(context.Background(), "http://127.0.0.1:1", models.Archived, models.Record{"reason": "old"})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestCreate_SoldFromMachineDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/machines/sold", r.URL.Path)
		body := readBody(t, r)
		assert.Equal(t, "D6", body.Machine(models.Sold).String("model"))
		writeData(t, w, http.StatusCreated, map[string]any{"s_id": "S5"})
	}))
	defer srv.Close()

	// a temporary source id never reached the server, so the machine
	// document itself is posted
	item := models.Record{
		"sourceId": "tmp-1",
		"machine":  map[string]any{"model": "D6"},
	}
	rec, err := newTestAdapter(t).Create(context.Background(), srv.URL, models.Sold, item)

	require.NoError(t, err)
	assert.Equal(t, "S5", rec.ID(models.Sold))
}

func TestUpdate_SoldSubresource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/machines/S1/sold", r.URL.Path)
		writeData(t, w, http.StatusOK, map[string]any{"s_id": "S1", "price": 10})
	}))
	defer srv.Close()

	rec, err := newTestAdapter(t).Update(context.Background(), srv.URL, models.Sold, "S1", models.Record{"price": 10})

	require.NoError(t, err)
	assert.Equal(t, "10", rec.String("price"))
}

func TestDelete_Located(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/machines/M1", r.URL.Path)
		assert.Equal(t, "located", r.URL.Query().Get("location"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestAdapter(t).Delete(context.Background(), srv.URL, models.Located, "M1")

	require.NoError(t, err)
}

func TestArchive_PostsToSourceMachine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/machines/M1/archive", r.URL.Path)
		body := readBody(t, r)
		assert.Equal(t, "M1", body.String("sourceId"))
		writeData(t, w, http.StatusOK, map[string]any{"a_id": "A9"})
	}))
	defer srv.Close()

	rec, err := newTestAdapter(t).Archive(context.Background(), srv.URL, "M1", models.Record{"reason": "retired"})

	require.NoError(t, err)
	assert.Equal(t, "A9", rec.ID(models.Archived))
}

func TestSell_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/machines/M1/sold", r.URL.Path)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).Sell(context.Background(), srv.URL, "M1", nil)

	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.True(t, IsUnavailable(err))
}

// ── Probe ───────────────────────────────────────────────────────────────────

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	assert.NoError(t, a.Probe(context.Background(), srv.URL+"/health"))
	assert.ErrorIs(t, a.Probe(context.Background(), srv.URL+"/broken"), ErrInternalServerError)
}

func TestProbe_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := newTestAdapter(t).Probe(ctx, srv.URL)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

// ── Replay ──────────────────────────────────────────────────────────────────

func TestReplay_CreateStripsTempID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "op-1", r.Header.Get("Idempotency-Key"))
		body := readBody(t, r)
		_, hasID := body["m_id"]
		assert.False(t, hasID)
		writeData(t, w, http.StatusCreated, map[string]any{"m_id": 501})
	}))
	defer srv.Close()

	res, err := newTestAdapter(t).Replay(context.Background(), srv.URL, models.OutboxEntry{
		OpID:     "op-1",
		Method:   models.MethodCreate,
		Category: models.Located,
		ID:       "tmp-1",
		Payload:  models.Record{"m_id": "tmp-1", "model": "D6"},
	})

	require.NoError(t, err)
	assert.Equal(t, "501", res.ID)
}

func TestReplay_ArchiveCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/machines/M1/archive", r.URL.Path)
		writeData(t, w, http.StatusOK, map[string]any{"a_id": "A1"})
	}))
	defer srv.Close()

	res, err := newTestAdapter(t).Replay(context.Background(), srv.URL, models.OutboxEntry{
		OpID:     "op-2",
		Method:   models.MethodCreate,
		Category: models.Archived,
		ID:       "tmp-2",
		Payload:  models.Record{"a_id": "tmp-2", "sourceId": "M1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "A1", res.ID)
}

func TestReplay_UpdateAndDelete(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path+" "+r.Header.Get("Idempotency-Key"))
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeData(t, w, http.StatusOK, map[string]any{})
	}))
	defer srv.Close()

	a := newTestAdapter(t)
	_, err := a.Replay(context.Background(), srv.URL, models.OutboxEntry{
		OpID: "op-u", Method: models.MethodUpdate, Category: models.Contacts, ID: "C1", Payload: models.Record{"name": "B"},
	})
	require.NoError(t, err)

	_, err = a.Replay(context.Background(), srv.URL, models.OutboxEntry{
		OpID: "op-d", Method: models.MethodDelete, Category: models.Located, ID: "M1",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{
		"PUT /api/contact/C1 op-u",
		"DELETE /api/machines/M1 op-d",
	}, calls)
}

func TestReplay_UnknownMethod(t *testing.T) {
	_, err := newTestAdapter(t).Replay(context.Background(), "http://127.0.0.1:1", models.OutboxEntry{Method: "patch"})

	assert.True(t, errors.Is(err, ErrBadRequest))
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "host and port", in: "127.0.0.1:27271", want: "http://127.0.0.1:27271"},
		{name: "trailing slash", in: "https://inventory.example.com/", want: "https://inventory.example.com"},
		{name: "keeps path", in: "http://host/api-prefix", want: "http://host/api-prefix"},
		{name: "empty", in: "", wantErr: true},
		{name: "no host", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordPath(t *testing.T) {
	assert.Equal(t, "/api/machines/M%201", recordPath(models.Located, "M 1"))
	assert.Equal(t, "/api/machines/A1/archive", recordPath(models.Archived, "A1"))
	assert.Equal(t, "/api/machines/S1/sold", recordPath(models.Sold, "S1"))
	assert.Equal(t, "/api/contact/C1", recordPath(models.Contacts, "C1"))
}
