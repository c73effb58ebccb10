package kno3

import (
	"fmt"

	"golang.org/x/exp/slices"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ApplyMove applies the move from->to to the position.
//
// Preconditions: from holds a piece of the side to move, and to is one of
// the piece's generated destinations. On violation the position is left
// untouched and an error wrapping ErrNoPieceAtSource, ErrWrongSideToMove or
// ErrIllegalTarget is returned.
//
// Effect: the piece leaves from, any opponent piece on to is captured, the
// turn flips, the en-passant square is set after a double pawn push and
// cleared on every other ply, and castling rights are revoked when a king or
// rook moves from, or a rook is captured on, its original square.
//
// Promotion, castling execution and check validation are not performed.
func (g *GameState) ApplyMove(from, to Square) error {
	moved := g.board.PieceAt(from)
	if moved == NoPiece {
		return fmt.Errorf("%s: %w", from, ErrNoPieceAtSource)
	}
	if moved.Color() != g.sideToMove {
		return fmt.Errorf("%s (%s to move): %w", from, g.sideToMove, ErrWrongSideToMove)
	}
	moves, _ := g.board.PossibleMoves(from)
	if !slices.Contains(moves, to) {
		return fmt.Errorf("%s%s: %w", from, to, ErrIllegalTarget)
	}

	captured := g.board.PieceAt(to)
	g.board.MovePiece(from, to)

	// The en-passant target lives for exactly one ply after a double push.
	g.enPassantSquare = NoSquare
	if moved.Type() == PieceTypePawn && abs(to.Rank()-from.Rank()) == 2 {
		if g.sideToMove == White {
			g.enPassantSquare = from + 8
		} else {
			g.enPassantSquare = from - 8
		}
	}

	// Update castling rights
	newCR := g.castlingRights
	switch moved {
	case WhiteKing:
		newCR &^= (CastlingWhiteK | CastlingWhiteQ)
	case BlackKing:
		newCR &^= (CastlingBlackK | CastlingBlackQ)
	}
	if moved == WhiteRook {
		if from == 0 {
			newCR &^= CastlingWhiteQ
		} else if from == 7 {
			newCR &^= CastlingWhiteK
		}
	} else if moved == BlackRook {
		if from == 56 {
			newCR &^= CastlingBlackQ
		} else if from == 63 {
			newCR &^= CastlingBlackK
		}
	}
	// Rook captured on original squares removes rights
	if captured != NoPiece && captured.Type() == PieceTypeRook {
		switch to {
		case 0:
			newCR &^= CastlingWhiteQ
		case 7:
			newCR &^= CastlingWhiteK
		case 56:
			newCR &^= CastlingBlackQ
		case 63:
			newCR &^= CastlingBlackK
		}
	}
	g.castlingRights = newCR

	g.sideToMove = 1 - g.sideToMove
	return nil
}
