package apperror

import "errors"

var (
	ErrInvalidBoard     = errors.New("invalid board")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrMalformedRequest = errors.New("malformed request")
	ErrBoardAtEndState  = errors.New("board at end state")
)
