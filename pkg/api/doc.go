// Package api serves spanning-tree builds over HTTP.
//
// # Endpoints
//
//	GET  /health   liveness probe
//	POST /v1/mst   build every site of the request body
//
// A request carries the sites as arrays of [x, y] pairs, an optional method,
// and an optional faulty probe (1-based) to remove after the first build:
//
//	{
//	  "sites": [[[0, 0], [0, 3], [4, 0]], [[7, 7]]],
//	  "method": "prim",
//	  "faulty": {"site": 1, "probe": 2}
//	}
//
// Every response uses the same envelope:
//
//	{"success": true, "data": {...}}
//	{"success": false, "error": {"code": "OUT_OF_RANGE", "message": "..."}}
//
// Error codes come from package errors and map to HTTP statuses with
// [errors.HTTPStatus]. A site that fails to build (for example one with no
// probes) does not fail the request; its error is reported on the site.
package api
