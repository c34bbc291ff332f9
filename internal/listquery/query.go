// Package listquery implements the list-query pipeline shared by every
// listing endpoint: parameter parsing, predicate filtering, sort strategies,
// pagination and response envelopes. It is pure and storage-agnostic;
// callers hand it in-memory collections fetched from their repositories.
package listquery

import (
	"net/url"
	"strconv"
	"strings"

	"social-service/internal/shared/apperr"
)

// Query is the normalized descriptor derived from raw request parameters.
type Query struct {
	Page  int
	Limit int
	Mode  string
	Text  string
}

// Spec declares how one endpoint interprets its parameters.
type Spec struct {
	DefaultLimit int
	ModeParam    string   // "sort", "filter", "timeframe" or "type"; empty disables modes
	Modes        []string // allowed values for ModeParam
	DefaultMode  string
	TextParam    string // usually "q"; empty disables free text
	TextRequired bool
}

// Parse normalizes raw query parameters against spec. Empty or non-numeric
// page/limit fall back to their defaults; explicit non-positive values and
// unknown mode values are rejected.
func Parse(params url.Values, spec Spec) (Query, error) {
	q := Query{Page: 1, Limit: spec.DefaultLimit, Mode: spec.DefaultMode}

	var err error
	if q.Page, err = parsePositive(params.Get("page"), 1, "page"); err != nil {
		return Query{}, err
	}
	if q.Limit, err = parsePositive(params.Get("limit"), spec.DefaultLimit, "limit"); err != nil {
		return Query{}, err
	}

	if spec.ModeParam != "" {
		if v := params.Get(spec.ModeParam); v != "" {
			if !contains(spec.Modes, v) {
				return Query{}, apperr.Invalid(
					"Invalid %s. Must be one of: %s", spec.ModeParam, strings.Join(spec.Modes, ", "))
			}
			q.Mode = v
		}
	}

	if spec.TextParam != "" {
		q.Text = strings.TrimSpace(params.Get(spec.TextParam))
		if spec.TextRequired && q.Text == "" {
			return Query{}, apperr.Invalid("Search query is required")
		}
	}
	return q, nil
}

func parsePositive(raw string, def int, name string) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, nil
	}
	if n <= 0 {
		return 0, apperr.Invalid("%s must be a positive integer", name)
	}
	return n, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
