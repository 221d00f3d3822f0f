// Package catalog provides the embedded, read-only catalog of flattened
// maintenance scripts bundled with sysup.
package catalog

import "embed"

// The assets tree is the committed output of the transclusion pipeline.
// Regenerate after editing anything under scripts/; catalog.d records the
// exact input set the last run depended on.
//
//go:generate go run github.com/jaspreet-dot-casa/sysup/cmd/sysup flatten --src ../../scripts --dst assets --deps catalog.d

// Assets contains the flattened scripts, path-addressable under "assets/".
// Every file is fully self-contained: no include directives remain.
//
//go:embed assets
var Assets embed.FS

// rawMetadata describes the catalog entries shown in the TUI.
//
//go:embed catalog.yaml
var rawMetadata []byte
