// Package metric provides Prometheus metric registration and exposition for
// SemPath components.
//
// Components construct their own collectors in a package-local metrics.go
// and register them through a shared *Registry, keyed by component and
// metric name so duplicate registrations fail loudly instead of silently
// shadowing each other. The optional Server exposes the registry over HTTP
// for scraping; the CLI starts it only when a metrics port is configured.
package metric
