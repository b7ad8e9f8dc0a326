package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	machinesPath = "/api/machines"
	contactsPath = "/api/contact"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. Requests time out after adapterCfg.RequestTimeout unless
// the caller's context expires first.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) ServerAdapter {
	return &httpServerAdapter{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		logger: logger,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// collectionPath returns the path listing records of c.
func collectionPath(c models.Category) string {
	if c == models.Contacts {
		return contactsPath
	}
	return machinesPath
}

// recordPath returns the path addressing one record of c. Archived and sold
// records are edited through their own sub-resources.
func recordPath(c models.Category, id string) string {
	return collectionPath(c) + "/" + url.PathEscape(id) + moveSuffix[c]
}

// moveSuffix holds the sub-resource of categories reached by moving a
// located machine.
var moveSuffix = map[models.Category]string{
	models.Archived: "/archive",
	models.Sold:     "/sold",
}

// request starts a request against base+path. A transport failure of the
// returned request is reported by send as [ErrNetworkUnavailable].
func (h *httpServerAdapter) request(ctx context.Context, base string) (*resty.Request, string, error) {
	baseURL, err := normalizeBaseURL(base)
	if err != nil {
		return nil, "", err
	}
	return h.client.R().SetContext(ctx), baseURL, nil
}

func send(req *resty.Request, method, url string) (*resty.Response, error) {
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrNetworkUnavailable, method, url, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return resp, err
	}
	return resp, nil
}

func decodeData[T any](resp *resty.Response) (T, error) {
	var env models.Envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return env.Data, nil
}

// List implements [ServerAdapter]. Machine categories are served by
// GET /api/machines?location=<category>, contacts by GET /api/contact.
func (h *httpServerAdapter) List(ctx context.Context, base string, q models.Query) (models.Page, error) {
	req, baseURL, err := h.request(ctx, base)
	if err != nil {
		return models.Page{}, err
	}

	params := q.Values()
	if q.Category.IsMachine() {
		params.Set("location", string(q.Category))
	}

	resp, err := send(req.SetQueryParamsFromValues(params), resty.MethodGet, baseURL+collectionPath(q.Category))
	if err != nil {
		return models.Page{}, fmt.Errorf("list %s: %w", q.Category, err)
	}

	page, err := decodeData[models.Page](resp)
	if err != nil {
		return models.Page{}, fmt.Errorf("list %s: %w", q.Category, err)
	}
	if page.Data == nil {
		page.Data = []models.Record{}
	}
	return page, nil
}

// Detail implements [ServerAdapter].
func (h *httpServerAdapter) Detail(ctx context.Context, base string, category models.Category, id string) (models.Record, error) {
	req, baseURL, err := h.request(ctx, base)
	if err != nil {
		return nil, err
	}

	path := collectionPath(category) + "/" + url.PathEscape(id)
	if category.IsMachine() {
		req.SetQueryParam("location", string(category))
	}

	resp, err := send(req, resty.MethodGet, baseURL+path)
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", category, id, err)
	}
	return decodeData[models.Record](resp)
}

// Filters implements [ServerAdapter] via GET /api/machines/filters.
func (h *httpServerAdapter) Filters(ctx context.Context, base string) (models.FilterOptions, error) {
	req, baseURL, err := h.request(ctx, base)
	if err != nil {
		return nil, err
	}

	resp, err := send(req, resty.MethodGet, baseURL+machinesPath+"/filters")
	if err != nil {
		return nil, fmt.Errorf("get filters: %w", err)
	}
	return decodeData[models.FilterOptions](resp)
}

// Locations implements [ServerAdapter] via GET /api/machines/locations.
func (h *httpServerAdapter) Locations(ctx context.Context, base string, serial string) (models.MachineLocations, error) {
	req, baseURL, err := h.request(ctx, base)
	if err != nil {
		return models.MachineLocations{}, err
	}

	resp, err := send(req.SetQueryParam("serialNumber", serial), resty.MethodGet, baseURL+machinesPath+"/locations")
	if err != nil {
		return models.MachineLocations{}, fmt.Errorf("get locations: %w", err)
	}
	return decodeData[models.MachineLocations](resp)
}

// Create implements [ServerAdapter]. Archived and sold records are created by
// moving their source machine, see [httpServerAdapter.Archive].
func (h *httpServerAdapter) Create(ctx context.Context, base string, category models.Category, item models.Record) (models.Record, error) {
	return h.create(ctx, base, category, item, "")
}

func (h *httpServerAdapter) create(ctx context.Context, base string, category models.Category, item models.Record, opID string) (models.Record, error) {
	req, baseURL, err := h.request(ctx, base)
	if err != nil {
		return nil, err
	}
	if opID != "" {
		req.SetHeader(utils.IdempotencyKeyHeader, opID)
	}

	path := collectionPath(category)
	if category.Delegates() {
		path, err = movePath(category, item)
		if err != nil {
			return nil, err
		}
	}

	resp, err := send(req.SetBody(item), resty.MethodPost, baseURL+path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", category, err)
	}
	return decodeData[models.Record](resp)
}

// movePath returns the route creating an archived or sold record. A record
// derived from a stored machine goes through that machine's sub-resource; a
// record that only carries a full machine document (its located source never
// reached the server) goes through the collection-level route.
func movePath(category models.Category, item models.Record) (string, error) {
	if source := sourceID(item); source != "" && !models.IsTempID(source) {
		return recordPath(category, source), nil
	}
	if len(item.Machine(category)) > 0 {
		return machinesPath + moveSuffix[category], nil
	}
	return "", fmt.Errorf("%w: %s record without source machine", ErrBadRequest, category)
}

// sourceID returns the located machine id an archived or sold record was
// derived from.
func sourceID(item models.Record) string {
	if id := item.String("sourceId"); id != "" {
		return id
	}
	return item.Machine(models.Archived).ID(models.Located)
}

// Update implements [ServerAdapter].
func (h *httpServerAdapter) Update(ctx context.Context, base string, category models.Category, id string, patch models.Record) (models.Record, error) {
	return h.update(ctx, base, category, id, patch, "")
}

func (h *httpServerAdapter) update(ctx context.Context, base string, category models.Category, id string, patch models.Record, opID string) (models.Record, error) {
	req, baseURL, err := h.request(ctx, base)
	if err != nil {
		return nil, err
	}
	if opID != "" {
		req.SetHeader(utils.IdempotencyKeyHeader, opID)
	}

	resp, err := send(req.SetBody(patch), resty.MethodPut, baseURL+recordPath(category, id))
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", category, id, err)
	}
	return decodeData[models.Record](resp)
}

// Delete implements [ServerAdapter].
func (h *httpServerAdapter) Delete(ctx context.Context, base string, category models.Category, id string) error {
	return h.delete(ctx, base, category, id, "")
}

func (h *httpServerAdapter) delete(ctx context.Context, base string, category models.Category, id string, opID string) error {
	req, baseURL, err := h.request(ctx, base)
	if err != nil {
		return err
	}
	if opID != "" {
		req.SetHeader(utils.IdempotencyKeyHeader, opID)
	}
	if category.IsMachine() {
		req.SetQueryParam("location", string(category))
	}

	path := collectionPath(category) + "/" + url.PathEscape(id)
	if _, err = send(req, resty.MethodDelete, baseURL+path); err != nil {
		return fmt.Errorf("delete %s %s: %w", category, id, err)
	}
	return nil
}

// Archive implements [ServerAdapter] via POST /api/machines/{id}/archive.
func (h *httpServerAdapter) Archive(ctx context.Context, base string, id string, payload models.Record) (models.Record, error) {
	return h.move(ctx, base, models.Archived, id, payload)
}

// Sell implements [ServerAdapter] via POST /api/machines/{id}/sold.
func (h *httpServerAdapter) Sell(ctx context.Context, base string, id string, payload models.Record) (models.Record, error) {
	return h.move(ctx, base, models.Sold, id, payload)
}

func (h *httpServerAdapter) move(ctx context.Context, base string, target models.Category, id string, payload models.Record) (models.Record, error) {
	item := payload.Clone()
	item["sourceId"] = id
	return h.create(ctx, base, target, item, "")
}

// Probe implements [ServerAdapter].
func (h *httpServerAdapter) Probe(ctx context.Context, rawURL string) error {
	resp, err := h.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return fmt.Errorf("%w: probe %s: %w", ErrNetworkUnavailable, rawURL, err)
	}
	return mapHTTPError(resp)
}

// Replay implements [ServerAdapter].
func (h *httpServerAdapter) Replay(ctx context.Context, base string, entry models.OutboxEntry) (models.ReplayResult, error) {
	log := logger.FromContext(ctx)

	switch entry.Method {
	case models.MethodCreate:
		item := entry.Payload.Clone()
		// the server assigns the permanent id
		if entry.Temporary() {
			delete(item, entry.Category.IDField())
		}
		created, err := h.create(ctx, base, entry.Category, item, entry.OpID)
		if err != nil {
			return models.ReplayResult{}, err
		}
		id := created.ID(entry.Category)
		if id == "" && !entry.Temporary() {
			id = entry.ID
		}
		log.Debug().Str("func", "httpServerAdapter.Replay").
			Str("op_id", entry.OpID).
			Str("temp_id", entry.ID).
			Str("id", id).
			Msg("replayed create")
		return models.ReplayResult{ID: id}, nil

	case models.MethodUpdate:
		_, err := h.update(ctx, base, entry.Category, entry.ID, entry.Payload, entry.OpID)
		return models.ReplayResult{}, err

	case models.MethodDelete:
		return models.ReplayResult{}, h.delete(ctx, base, entry.Category, entry.ID, entry.OpID)
	}

	return models.ReplayResult{}, fmt.Errorf("%w: unknown outbox method %q", ErrBadRequest, entry.Method)
}
