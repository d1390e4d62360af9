package pipeline

import "errors"

// ErrCardNotFound indicates the dragged card is not on the board.
var ErrCardNotFound = errors.New("card not found on board")
