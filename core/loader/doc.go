// Package loader registers the HTTP features of the service.
//
// A Feature names itself, reports whether it is enabled and mounts its routes in
// Load. The Manager keeps features in registration order; LoadAll skips disabled
// ones, rejects duplicate names and stops at the first feature that fails to load,
// for example when the items feature cannot migrate its miss log table.
package loader
