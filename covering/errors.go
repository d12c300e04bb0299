package covering

import "errors"

// ErrInvalidParameters is wrapped with the specific violated precondition
// whenever Build or Config.Validate reject an input.
var ErrInvalidParameters = errors.New("invalid covering array parameters")
