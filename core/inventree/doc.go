// Package inventree implements the catalog gateway on top of the InvenTree
// REST API.
//
// Requests carry "Authorization: Token <token>" and JSON bodies. List
// endpoints may answer with a plain array or with a paginated
// {"count", "next", "results"} object; both are accepted and pagination links
// are followed. Any non-2xx answer becomes an *APIError. Requests are never
// retried: a failed write aborts the record being processed.
//
// The HTTP transport is pluggable through WithHTTPClient, which the tests use
// to serve the API from an in-process fake.
package inventree
