package catalog

import "errors"

// ErrCatalogUnavailable covers every way the catalog can fail to produce a
// page: transport errors, non-200 responses, bodies without a results field
// and an open circuit breaker. An empty page with a nil error means the
// catalog answered but had no matches.
var ErrCatalogUnavailable = errors.New("catalog unavailable")
