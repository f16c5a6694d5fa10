package platform

import "fmt"

// ErrClientConstruction occurs when an authenticated client couldn't be created.
type ErrClientConstruction struct {
	Original error
}

func (e ErrClientConstruction) Error() string {
	return fmt.Sprintf("Unable to create Modal client. Error: %q", e.Original)
}
