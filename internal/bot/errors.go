package bot

import "errors"

var (
	// ErrSearchInvariant means a non-terminal node had no open column.
	ErrSearchInvariant = errors.New("search invariant violated")
	ErrNoMoves         = errors.New("no legal moves")
	ErrUnknownStrategy = errors.New("unknown strategy")
)
