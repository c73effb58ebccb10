package kno3

import "math/bits"

// Material values in pawns, indexed by PieceType. Kings carry no material
// weight; the side losing one has bigger problems than the count.
var pieceValue = [7]int{
	PieceTypePawn:   1,
	PieceTypeKnight: 3,
	PieceTypeBishop: 3,
	PieceTypeRook:   5,
	PieceTypeQueen:  9,
	PieceTypeKing:   0,
}

// MaterialScore returns the material balance of the position as White's
// total minus Black's. Positive favors White.
func (b *Board) MaterialScore() int {
	return materialCount(b.Bitboards(White)) - materialCount(b.Bitboards(Black))
}

// MaterialScore reports the material balance of the position.
func (g *GameState) MaterialScore() int { return g.board.MaterialScore() }

func materialCount(bbs Bitboards) int {
	total := bits.OnesCount64(bbs.Pawns) * pieceValue[PieceTypePawn]
	total += bits.OnesCount64(bbs.Knights) * pieceValue[PieceTypeKnight]
	total += bits.OnesCount64(bbs.Bishops) * pieceValue[PieceTypeBishop]
	total += bits.OnesCount64(bbs.Rooks) * pieceValue[PieceTypeRook]
	total += bits.OnesCount64(bbs.Queens) * pieceValue[PieceTypeQueen]
	return total
}
