// Package httpapi serves the conversion engine over JSON/HTTP and provides a
// matching client.
//
// HTTP API
//
//	GET /api/v1/convert?value=1&from=m&to=ft
//	POST /api/v1/convert {"value": "1", "from": "m", "to": "ft"}
//	    Convert value and return {"value","from","to","result"}. An empty
//	    value yields an empty result.
//
//	GET /api/v1/units
//	    List the convertible units with symbols and accepted aliases.
//
//	GET /healthz
//	    Liveness probe, returns "ok".
//
//	GET /metrics
//	    Prometheus metrics.
//
// Errors are JSON {"error": text, "code": code}. Codes and statuses:
// invalid_number (422), unknown_unit (400), unsupported_unit_pair (422),
// bad_request (400), method_not_allowed (405), rate_limited (429).
//
// API routes pass through request ID, access log, metrics and rate limit
// middleware. The client maps error codes back to the domain sentinel
// errors, so callers can use errors.Is regardless of where the conversion ran.
package httpapi
