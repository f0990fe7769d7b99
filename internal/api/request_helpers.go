package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xanderson/homebank-api/internal/domain"
)

// getPathID extracts a positive int64 identifier from the URL path parameters.
//
// Returns a wrapped domain.ErrInvalidID when the parameter is missing,
// not a base-10 integer, or not greater than zero.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// userLocation is the Location header value for a created user.
func userLocation(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}
