// Package kno3 implements a bitboard chess position: piece placement as
// twelve occupancy masks, pseudo-legal move generation, and move application.
// Moves are pseudo-legal only; king safety is the caller's concern.
package kno3

import (
	"fmt"
	"math/bits"
)

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color { return colorOf(p) }

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Square represents a board position (0-63). File is sq%8, rank is sq/8,
// so a1=0, h1=7, a8=56, h8=63.
type Square int

const NoSquare Square = -1

// File returns the square's file index (0 = a-file).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the square's rank index (0 = rank 1).
func (sq Square) Rank() int { return int(sq) / 8 }

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq <= 63 }

// String returns the algebraic coordinate of the square (e.g. "e2").
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts an algebraic coordinate (e.g. "e2") to a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, alg)
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, alg)
	}
	return Square(int(file-'a') + int(rank-'1')*8), nil
}

// Bitboards exposes the per-piece occupancy masks for one side.
type Bitboards struct {
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64
	All     uint64
}

// Board holds piece placement as per-type, per-color occupancy masks.
// The twelve masks are pairwise disjoint; their union is total occupancy.
// Board carries no game metadata; see GameState for side to move, castling
// rights and the en-passant square.
type Board struct {
	// Piece bitboards for each piece type and color (index 0 = white, 1 = black)
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	// Occupancy bitboards for each side
	occupancy [2]uint64
	// (overall occupancy can be derived as occupancy[White] | occupancy[Black])
}

// Bitboards returns the per-piece bitboards for the requested side.
func (b *Board) Bitboards(color Color) Bitboards {
	idx := int(color)
	return Bitboards{
		Pawns:   b.pawns[idx],
		Knights: b.knights[idx],
		Bishops: b.bishops[idx],
		Rooks:   b.rooks[idx],
		Queens:  b.queens[idx],
		Kings:   b.kings[idx],
		All:     b.occupancy[idx],
	}
}

// ==========================
// Bitboard helpers
// ==========================

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	x := *mask & -(*mask)
	idx := bits.TrailingZeros64(x)
	*mask &= *mask - 1
	return idx
}

// ==========================
// Board occupancy queries
// ==========================

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[0] | b.occupancy[1] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[int(c)] }

// PieceAt returns the piece on a square, or NoPiece for an empty or
// off-board square. The lookup walks the six masks of whichever side
// occupies the square.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	bit := bb(sq)
	var c Color
	switch {
	case b.occupancy[White]&bit != 0:
		c = White
	case b.occupancy[Black]&bit != 0:
		c = Black
	default:
		return NoPiece
	}
	ci := int(c)
	var pt PieceType
	switch {
	case b.pawns[ci]&bit != 0:
		pt = PieceTypePawn
	case b.knights[ci]&bit != 0:
		pt = PieceTypeKnight
	case b.bishops[ci]&bit != 0:
		pt = PieceTypeBishop
	case b.rooks[ci]&bit != 0:
		pt = PieceTypeRook
	case b.queens[ci]&bit != 0:
		pt = PieceTypeQueen
	case b.kings[ci]&bit != 0:
		pt = PieceTypeKing
	default:
		return NoPiece
	}
	return pieceFromType(c, pt)
}

// colorOf returns the color of a piece. NoPiece is treated as White.
func colorOf(p Piece) Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// typeOf returns the piece type in [1..6] with color stripped.
func typeOf(p Piece) Piece { return p & 7 }

// pieceFromType combines a colorless type with a side to produce a concrete Piece.
func pieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

// mask returns a pointer to the occupancy mask holding pieces of p's type and color.
func (b *Board) mask(p Piece) *uint64 {
	ci := int(colorOf(p))
	switch typeOf(p) {
	case 1:
		return &b.pawns[ci]
	case 2:
		return &b.knights[ci]
	case 3:
		return &b.bishops[ci]
	case 4:
		return &b.rooks[ci]
	case 5:
		return &b.queens[ci]
	case 6:
		return &b.kings[ci]
	}
	return nil
}

// addPiece places a piece on an empty square and updates its mask and occupancy.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece || !sq.Valid() {
		return
	}
	*b.mask(p) |= bb(sq)
	b.occupancy[int(colorOf(p))] |= bb(sq)
}

// removePiece removes a piece from a square and updates its mask and occupancy.
func (b *Board) removePiece(sq Square) Piece {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return NoPiece
	}
	*b.mask(p) &^= bb(sq)
	b.occupancy[int(colorOf(p))] &^= bb(sq)
	return p
}

// SetPiece sets a piece on a square, replacing any existing piece, and keeps state in sync.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { _ = b.removePiece(sq) }

// MovePiece moves a piece from one square to another. If a piece exists on 'to', it is captured.
func (b *Board) MovePiece(from, to Square) {
	moving := b.removePiece(from)
	// capture if any
	_ = b.removePiece(to)
	b.addPiece(to, moving)
}

// Validate checks internal consistency: the twelve piece masks must be
// pairwise disjoint and must aggregate exactly to the per-side occupancy.
// Returns true if consistent, false otherwise.
func (b *Board) Validate() bool {
	for ci := 0; ci < 2; ci++ {
		masks := [6]uint64{b.pawns[ci], b.knights[ci], b.bishops[ci], b.rooks[ci], b.queens[ci], b.kings[ci]}
		var union uint64
		var total int
		for _, m := range masks {
			union |= m
			total += bits.OnesCount64(m)
		}
		if union != b.occupancy[ci] {
			return false
		}
		if total != bits.OnesCount64(union) {
			return false
		}
	}
	// The two sides never share a square.
	return b.occupancy[0]&b.occupancy[1] == 0
}
