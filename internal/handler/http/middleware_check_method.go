// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. Chi calls it
// when the path matches a route that does not handle the request method. It
// answers 405 with an Allow header listing the methods the path does
// handle, as computed by matching the path against every method. A path
// that handles none of them is answered 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routeMethods {
			if method != r.Method && router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			utils.WriteProblem(w, http.StatusNotFound, "")
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteProblem(w, http.StatusMethodNotAllowed, r.Method+" "+r.URL.Path)
	}
}
