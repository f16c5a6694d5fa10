package dispatch

// Mode is the integration pattern used to invoke the remote function.
type Mode string

const (
	// ModeRemote calls the function and waits for its result.
	ModeRemote Mode = "remote"
	// ModeSpawn submits the call and returns its id without waiting.
	ModeSpawn Mode = "spawn"
)

// Supported returns true for modes the dispatcher can handle.
func (m Mode) Supported() bool {
	return m == ModeRemote || m == ModeSpawn
}

// label is used as a metric label value. Unsupported modes are collapsed to keep label cardinality bounded.
func (m Mode) label() string {
	if !m.Supported() {
		return "unsupported"
	}
	return string(m)
}
