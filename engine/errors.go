package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// The engine's failure policy follows the runtime's contract: misuse,
// failed lookups on get-or-fail accessors, out-of-bounds tile
// addresses and resource failures all surface a diagnostic and
// terminate the process. Embedders who need to intercept install a
// zap fatal hook via WithLogger; the default stays terminal.

// fatalLog handles diagnostics raised before an Engine exists or after
// it was shut down.
var fatalLog = zap.Must(zap.NewProduction())

// NotFoundError reports a miss on a named or id lookup. The Lookup and
// Find accessor variants return it; the get-or-fail variants log it
// and terminate.
type NotFoundError struct {
	Kind string // "texture", "object", "template", "font", "sound"
	Name string
	ID   int
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s not found: %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s not found: id %d", e.Kind, e.ID)
}
