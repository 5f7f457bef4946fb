// Package query composes search requests for the collection API.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/valenxo/Museo-MET/internal/domain"
)

// Browser-facing query parameter names.
const (
	ParamDepartmentID = "departmentId"
	ParamKeyword      = "keyword"
	ParamLocation     = "location"
)

// Filter holds the optional search filters. At least one must be set.
type Filter struct {
	DepartmentID string
	Keyword      string
	GeoLocation  string
}

// Empty reports whether no filter is populated.
func (f Filter) Empty() bool {
	return f.DepartmentID == "" && f.Keyword == "" && f.GeoLocation == ""
}

// FilterFromValues reads a Filter from browser query parameters.
func FilterFromValues(values url.Values) Filter {
	return Filter{
		DepartmentID: strings.TrimSpace(values.Get(ParamDepartmentID)),
		Keyword:      strings.TrimSpace(values.Get(ParamKeyword)),
		GeoLocation:  strings.TrimSpace(values.Get(ParamLocation)),
	}
}

// Validate checks the filter before any remote call is made.
// A geo location without a keyword is left to the upstream API to judge.
func (f Filter) Validate() error {
	if f.Empty() {
		return domain.Validation("build search url", "no search parameters supplied")
	}
	if f.DepartmentID != "" {
		id, err := strconv.Atoi(f.DepartmentID)
		if err != nil || id < 0 {
			return domain.Validation("build search url", "departmentId must be a non-negative integer, got %q", f.DepartmentID)
		}
	}
	return nil
}

// Encode renders the upstream query string: departmentId, q and geoLocation
// in that order, joined by a single '&'.
func (f Filter) Encode() string {
	params := make([]string, 0, 3)
	if f.DepartmentID != "" {
		params = append(params, "departmentId="+f.DepartmentID)
	}
	if f.Keyword != "" {
		params = append(params, "q="+EscapeComponent(f.Keyword))
	}
	if f.GeoLocation != "" {
		params = append(params, "geoLocation="+EscapeComponent(f.GeoLocation))
	}
	return strings.Join(params, "&")
}

// BuildSearchURL returns the upstream search URL for f under base.
func BuildSearchURL(base string, f Filter) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + "/search?" + f.Encode(), nil
}

// EscapeComponent percent-encodes s for use as a query value, with spaces
// encoded as %20.
func EscapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
