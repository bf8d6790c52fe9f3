// Package model holds the records persisted by the repositories and the
// request payloads decoded by the handlers.
package model
