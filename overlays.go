package formbind

import (
	"io/fs"

	"github.com/goliatone/go-formbind/pkg/uischema"
)

// EmbeddedOverlays exposes the bundled UI overlays for the sample types so
// callers can reuse or extend them without importing uischema directly.
func EmbeddedOverlays() fs.FS {
	return uischema.EmbeddedFS()
}
