package game

import "errors"

var (
	// ErrInvalidArgument covers unknown names, bad action parameters and
	// trades the party cannot afford. State is untouched when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned for any action once the journey has ended.
	ErrInvalidState = errors.New("invalid state")
)
