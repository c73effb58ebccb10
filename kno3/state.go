package kno3

// GameState is the position facade: the board masks plus the game metadata
// a single session mutates in place. One GameState is owned by one caller;
// there is no internal locking. Concurrent readers must each work on their
// own Clone.
type GameState struct {
	board Board

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square
}

// NewGame returns the standard initial position with White to move.
func NewGame() *GameState {
	g, err := ParseFEN(FENStartPos)
	if err != nil {
		// FENStartPos is a constant known-good FEN.
		panic(err)
	}
	return g
}

// Board returns the position's piece placement for read-only queries.
func (g *GameState) Board() *Board { return &g.board }

// SideToMove reports which side is to play.
func (g *GameState) SideToMove() Color { return g.sideToMove }

// CastlingRights returns the remaining castling rights bitmask.
func (g *GameState) CastlingRights() CastlingRights { return g.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (g *GameState) EnPassantSquare() Square { return g.enPassantSquare }

// PieceAt returns the piece on a square, or NoPiece if empty.
func (g *GameState) PieceAt(sq Square) Piece { return g.board.PieceAt(sq) }

// PossibleMoves returns the pseudo-legal destinations for the piece on sq.
// It is a pure read of the current placement; the side to move is not
// consulted (the piece's own color is).
func (g *GameState) PossibleMoves(sq Square) ([]Square, bool) {
	return g.board.PossibleMoves(sq)
}

// Clone returns an independent deep copy of the position. Clones support the
// one-owner model: a snapshot may be queried in parallel with mutations of
// the original.
func (g *GameState) Clone() *GameState {
	c := *g
	return &c
}
