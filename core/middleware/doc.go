// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query parameter).
//   - rayid: assigns every request a ray id, stored in the "ray_id" local and echoed
//     in the X-Ray-ID response header for tracing.
//
// Request metrics live in core/metrics.
package middleware
