// Package metrics registers the Prometheus collectors of the service.
//
// Collectors are package level and registered with the default registry through
// promauto. The engine itself stays free of instrumentation; services record one
// resolution observation per request, the catalog store records refresh outcomes and
// the asset source records cache hits.
package metrics
