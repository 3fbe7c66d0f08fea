package sentinel

import "errors"

// Infrastructure facts returned (optionally wrapped) by stores. Services
// translate them into coded domain errors; stores never build coded errors.
//
//   - ErrNotFound: the row does not exist
//   - ErrConflict: a uniqueness constraint rejected the write
//   - ErrInvalidState: the row is in the wrong state for the write
//   - ErrUnavailable: the backing service cannot be reached
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
