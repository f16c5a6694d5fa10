package dispatch

import "fmt"

// ErrUnsupportedMode occurs when the configured integration pattern is neither remote nor spawn.
type ErrUnsupportedMode struct {
	Mode Mode
}

func (e ErrUnsupportedMode) Error() string {
	return fmt.Sprintf("Unsupported Modal integration pattern: %q.", string(e.Mode))
}
