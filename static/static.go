// Package static embeds the API documentation assets served under /docs
// and /static.
package static

import "embed"

// OpenAPIUI and OpenAPISpec are file names inside Files.
const (
	OpenAPIUI   = "openapi.html"
	OpenAPISpec = "openapi.json"
)

//go:embed openapi.html openapi.json
var Files embed.FS
