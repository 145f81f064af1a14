// Package server exposes the layout pipeline over HTTP.
//
// # Routes
//
//	GET    /healthz               liveness probe
//	POST   /v1/layout             scene → layout document
//	POST   /v1/render?format=svg  scene → one artifact
//	POST   /v1/query              scene + query → frames
//	POST   /v1/layouts            compute and store a layout document
//	GET    /v1/layouts            list stored documents
//	GET    /v1/layouts/{id}       fetch a stored document
//	DELETE /v1/layouts/{id}       delete a stored document
//	GET    /debug/stats           event counters (when a recorder is set)
//
// Request bodies are [pipeline.Options] JSON. Errors are JSON objects with
// "code" and "message"; INVALID_* codes map to 400 and NOT_FOUND codes to
// 404. Every response carries an X-Request-ID header.
package server
