package kno3_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chanson02/KnO3/kno3"
)

func TestApplyMoveDoublePush(t *testing.T) {
	g := kno3.NewGame()
	require.NoError(t, g.ApplyMove(12, 28)) // e2:e4

	require.Equal(t, kno3.WhitePawn, g.PieceAt(28))
	require.Equal(t, kno3.NoPiece, g.PieceAt(12))
	require.True(t, g.Board().Validate())

	_, ok := g.PossibleMoves(12)
	require.False(t, ok, "vacated source square must have no moves")

	require.Equal(t, kno3.Black, g.SideToMove())
	require.Equal(t, kno3.Square(20), g.EnPassantSquare(), "double push sets the skipped square")
}

func TestEnPassantSquareLifetime(t *testing.T) {
	g := kno3.NewGame()
	require.NoError(t, g.ApplyMove(12, 28)) // e2:e4
	require.Equal(t, kno3.Square(20), g.EnPassantSquare())

	require.NoError(t, g.ApplyMove(51, 35)) // d7:d5
	require.Equal(t, kno3.Square(43), g.EnPassantSquare())

	// A quiet knight move clears it.
	require.NoError(t, g.ApplyMove(6, 21)) // g1:f3
	require.Equal(t, kno3.NoSquare, g.EnPassantSquare())
}

func TestApplyMoveCapture(t *testing.T) {
	g := mustParse(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	require.NoError(t, g.ApplyMove(28, 35)) // exd5

	require.Equal(t, kno3.WhitePawn, g.PieceAt(35))
	require.Equal(t, kno3.NoPiece, g.PieceAt(28))
	require.True(t, g.Board().Validate())

	blackPawns := g.Board().Bitboards(kno3.Black).Pawns
	require.EqualValues(t, 7, bits.OnesCount64(blackPawns), "captured pawn must leave its mask")
}

func TestApplyMoveErrors(t *testing.T) {
	g := kno3.NewGame()
	before := g.Hash()

	err := g.ApplyMove(20, 28) // empty e3
	require.ErrorIs(t, err, kno3.ErrNoPieceAtSource)

	err = g.ApplyMove(51, 35) // black pawn, White to move
	require.ErrorIs(t, err, kno3.ErrWrongSideToMove)

	err = g.ApplyMove(12, 29) // e2 pawn cannot reach f4
	require.ErrorIs(t, err, kno3.ErrIllegalTarget)

	err = g.ApplyMove(0, 8) // a1 rook is blocked by its own pawn
	require.ErrorIs(t, err, kno3.ErrIllegalTarget)

	require.Equal(t, before, g.Hash(), "failed moves must leave the position untouched")
}

func TestCastlingRightsRevocation(t *testing.T) {
	const bareRooks = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	t.Run("king move drops both rights", func(t *testing.T) {
		g := mustParse(t, bareRooks)
		require.NoError(t, g.ApplyMove(4, 12)) // Ke1-e2
		require.Equal(t, kno3.CastlingBlackK|kno3.CastlingBlackQ, g.CastlingRights())
	})

	t.Run("rook move drops its side's right", func(t *testing.T) {
		g := mustParse(t, bareRooks)
		require.NoError(t, g.ApplyMove(0, 8)) // Ra1-a2
		require.Equal(t, kno3.CastlingWhiteK|kno3.CastlingBlackK|kno3.CastlingBlackQ, g.CastlingRights())
	})

	t.Run("rook captured on its original square drops the right", func(t *testing.T) {
		g := mustParse(t, bareRooks)
		require.NoError(t, g.ApplyMove(7, 63)) // Rxh8
		require.Equal(t, kno3.CastlingWhiteQ|kno3.CastlingBlackQ, g.CastlingRights())
	})

	t.Run("quiet rook move elsewhere keeps other rights", func(t *testing.T) {
		g := mustParse(t, bareRooks)
		require.NoError(t, g.ApplyMove(0, 24)) // Ra1-a4
		require.NoError(t, g.ApplyMove(63, 39)) // Rh8-h5
		require.Equal(t, kno3.CastlingWhiteK|kno3.CastlingBlackQ, g.CastlingRights())
	})
}
