package bracket

import "errors"

var (
	ErrInsufficientCandidates = errors.New("insufficient candidates")
	ErrInvalidSelection       = errors.New("invalid selection")
	ErrMalformedSelectionLog  = errors.New("malformed selection log")
	ErrUnsupportedSize        = errors.New("unsupported bracket size")
	ErrTournamentComplete     = errors.New("tournament already complete")

	// ErrDuplicateCandidate means a drawn bracket names the same candidate
	// twice, which only stored entries can do.
	ErrDuplicateCandidate = errors.New("duplicate candidate in bracket")
)
