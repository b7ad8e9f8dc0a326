package models

// Envelope is the outer JSON wrapper used by every REST response:
// {"data": ...} on success, optionally {"error": {...}} on failure.
type Envelope[T any] struct {
	Data  T               `json:"data"`
	Error *ProblemDetails `json:"error,omitempty"`
}

// ProblemDetails is the error body emitted by the REST layer.
type ProblemDetails struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Page is one page of a list query together with the filtered total.
type Page struct {
	Data  []Record `json:"data"`
	Total int      `json:"total"`
}

// FilterOption is one selectable value of a filter dropdown.
type FilterOption struct {
	Label string `json:"label"`
	Data  any    `json:"data"`
}

// FilterOptions maps a filter name (model, type, salesman, ...) to its
// options.
type FilterOptions map[string][]FilterOption

// MachineLocations lists the ids of machines sharing one serial number, per
// machine category.
type MachineLocations struct {
	Located  []string `json:"located"`
	Archived []string `json:"archived"`
	Sold     []string `json:"sold"`
}

// Ack is the result of a mutation. Queued is set when the mutation could not
// reach the server and was recorded in the outbox instead; ID then holds the
// id the caller should use until the server confirms the change.
type Ack struct {
	Queued bool   `json:"queued,omitempty"`
	ID     string `json:"id,omitempty"`
	Record Record `json:"machine,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
}

// SyncResult summarizes one flush and pull cycle.
type SyncResult struct {
	Flushed int  `json:"flushed"`
	Pending int  `json:"pending"`
	Pulled  bool `json:"pulled"`
}
