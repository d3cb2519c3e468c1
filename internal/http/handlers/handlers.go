// Package handlers binds the HTTP routes to the service layer.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bloghub/bloghub-be/internal/apperr"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxBodyBytes    = 1 << 20
)

var errInvalidCategoryFilter = apperr.Validation("invalid categoryId", nil)

// decodeJSON parses the request body into dst, reporting a validation error
// on malformed JSON. Bodies are capped at maxBodyBytes.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid JSON payload", nil)
	}
	return nil
}

// pathID extracts a positive numeric path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid "+name, nil)
	}
	return id, nil
}

// pageParams reads page/size query parameters with the shared bounds.
func pageParams(r *http.Request) (page, size int) {
	page = 0
	size = defaultPageSize
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 && v <= maxPageSize {
			size = v
		}
	}
	return page, size
}
