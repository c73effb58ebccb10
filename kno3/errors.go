package kno3

import "errors"

// Error kinds surfaced at the call boundary. All are recoverable; the engine
// never panics on malformed input. Callers match them with errors.Is.
var (
	// ErrNoPieceAtSource reports a move whose source square is empty.
	ErrNoPieceAtSource = errors.New("no piece at source square")
	// ErrWrongSideToMove reports a move of a piece belonging to the side not on move.
	ErrWrongSideToMove = errors.New("piece belongs to the side not on move")
	// ErrIllegalTarget reports a destination outside the piece's generated move set.
	ErrIllegalTarget = errors.New("destination is not reachable by the piece")
	// ErrInvalidFEN reports a malformed FEN field.
	ErrInvalidFEN = errors.New("invalid FEN")
	// ErrInvalidSquare reports a malformed algebraic coordinate.
	ErrInvalidSquare = errors.New("invalid algebraic square")
	// ErrUnsupportedPiece reports an unrecognized piece glyph.
	ErrUnsupportedPiece = errors.New("unrecognized piece character")
)
