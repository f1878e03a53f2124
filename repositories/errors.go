package repositories

import "github.com/pkg/errors"

// ErrIntegrity marks writes that reference a missing patient or doctor. The
// referencing table is left untouched when it is returned.
var ErrIntegrity = errors.New("data integrity violation")

// ErrInvalidStatus marks appointment writes carrying an unknown status or an
// update to an appointment already in a terminal state.
var ErrInvalidStatus = errors.New("invalid appointment status")
