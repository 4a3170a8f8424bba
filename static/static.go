// Package static holds the page assets served under static/.
package static

import "embed"

//go:embed *.js *.css
var FS embed.FS
