package kno3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chanson02/KnO3/kno3"
)

func TestCloneIsIndependent(t *testing.T) {
	g := kno3.NewGame()
	snapshot := g.Clone()
	before := snapshot.Hash()

	require.NoError(t, g.ApplyMove(12, 28))

	require.Equal(t, before, snapshot.Hash(), "mutating the original must not touch the clone")
	require.NotEqual(t, g.Hash(), snapshot.Hash())
	require.Equal(t, kno3.WhitePawn, snapshot.PieceAt(12))
}

func TestHashTracksPosition(t *testing.T) {
	g := kno3.NewGame()
	start := g.Hash()

	// Shuffle the kingside knights out and back; the position transposes
	// to the start and so must its hash.
	require.NoError(t, g.ApplyMove(6, 21))  // Ng1-f3
	require.NoError(t, g.ApplyMove(62, 45)) // Ng8-f6
	require.NotEqual(t, start, g.Hash())
	require.NoError(t, g.ApplyMove(21, 6))  // Nf3-g1
	require.NoError(t, g.ApplyMove(45, 62)) // Nf6-g8
	require.Equal(t, start, g.Hash())
}

func TestHashCoversMetadata(t *testing.T) {
	white, err := kno3.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	black, err := kno3.ParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	require.NotEqual(t, white.Hash(), black.Hash(), "side to move must be hashed")

	rights, err := kno3.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	noRights, err := kno3.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	require.NoError(t, err)
	require.NotEqual(t, rights.Hash(), noRights.Hash(), "castling rights must be hashed")
}

func TestNewGameMatchesStartPos(t *testing.T) {
	g := kno3.NewGame()
	parsed, err := kno3.ParseFEN(kno3.FENStartPos)
	require.NoError(t, err)
	require.Equal(t, parsed.Hash(), g.Hash())
	require.Equal(t, kno3.White, g.SideToMove())
	require.Equal(t,
		kno3.CastlingWhiteK|kno3.CastlingWhiteQ|kno3.CastlingBlackK|kno3.CastlingBlackQ,
		g.CastlingRights())
	require.Equal(t, kno3.NoSquare, g.EnPassantSquare())
}
