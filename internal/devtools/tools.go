//go:build tools

// Package devtools pins the code-generation tools invoked by go:generate
// directives elsewhere in this module (internal/term, internal/value,
// internal/types) so `go mod tidy` keeps them in go.mod without a
// developer needing them already on PATH.
package devtools

import (
	_ "golang.org/x/tools/cmd/stringer"
)
