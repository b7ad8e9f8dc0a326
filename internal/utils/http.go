package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
// Returns the number of bytes written to the response body.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteData wraps data into the {"data": ...} envelope used by the inventory
// API and writes it with [WriteJSON].
func WriteData[T any](w http.ResponseWriter, data T, statusCode int) (int, error) {
	return WriteJSON(w, models.Envelope[T]{Data: data}, statusCode)
}

// WriteProblem writes an error envelope carrying problem details. The title
// defaults to the standard status text.
func WriteProblem(w http.ResponseWriter, statusCode int, detail string) (int, error) {
	problem := &models.ProblemDetails{
		Title:  http.StatusText(statusCode),
		Status: statusCode,
		Detail: detail,
	}
	return WriteJSON(w, models.Envelope[any]{Error: problem}, statusCode)
}
