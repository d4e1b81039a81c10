package repository

import (
	"errors"
	"fmt"
)

// ErrStore is wrapped by every persistence failure.
var ErrStore = errors.New("store error")

var (
	ErrFailedToInsert = fmt.Errorf("%w: failed to insert record", ErrStore)
	ErrFailedToGet    = fmt.Errorf("%w: failed to get record", ErrStore)
	ErrFailedToList   = fmt.Errorf("%w: failed to list records", ErrStore)
)
