package kno3

// Precomputed attack masks for knights and kings from each square.
// Building the masks from (rank, file) offsets keeps every entry on the
// board; an offset that would wrap a file or rank edge is never generated.
var knightMoves [64]uint64
var kingMoves [64]uint64

// Pawn attack masks: pawnAttacks[color][sq] gives bitboard of squares that a pawn of 'color' attacks from 'sq'.
var pawnAttacks [2][64]uint64

func init() {
	initAttackTables()
}

// initAttackTables precomputes move attack bitboards for knights, kings, and pawn captures.
func initAttackTables() {
	// Knight moves
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		var mask uint64
		for _, off := range knightOffsets {
			rf := rank + off[0]
			ff := file + off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				target := rf*8 + ff
				mask |= uint64(1) << target
			}
		}
		knightMoves[sq] = mask
	}

	// King moves
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		var mask uint64
		for _, off := range kingOffsets {
			rf := rank + off[0]
			ff := file + off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				target := rf*8 + ff
				mask |= uint64(1) << target
			}
		}
		kingMoves[sq] = mask
	}

	// Pawn attacks
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		// White pawn attacks (moves upward)
		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file + 1)
			}
		}

		// Black pawn attacks (moves downward)
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file + 1)
			}
		}
	}
}

// PossibleMoves returns the pseudo-legal destination squares for the piece
// on sq, and ok=false when the square is empty or off the board. Destinations
// obey blocking and capture geometry but are not filtered for king safety.
//
// The order is deterministic per piece kind: sliders emit each ray near to
// far (rook left/right/up/down, bishop NW/SW/NE/SE, queen rook-then-bishop);
// knight, king and pawn-capture targets come out in ascending square order.
func (b *Board) PossibleMoves(sq Square) ([]Square, bool) {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return nil, false
	}
	us := p.Color()
	own := b.occupancy[int(us)]
	opp := b.occupancy[1-int(us)]

	moves := []Square{}
	switch p.Type() {
	case PieceTypePawn:
		moves = b.pawnDestinations(moves, sq, us)
	case PieceTypeKnight:
		moves = appendMask(moves, knightMoves[sq]&^own)
	case PieceTypeBishop:
		moves = bishopDestinations(moves, sq, own, opp)
	case PieceTypeRook:
		moves = rookDestinations(moves, sq, own, opp)
	case PieceTypeQueen:
		moves = rookDestinations(moves, sq, own, opp)
		moves = bishopDestinations(moves, sq, own, opp)
	case PieceTypeKing:
		moves = appendMask(moves, kingMoves[sq]&^own)
	default:
		return nil, false
	}
	return moves, true
}

// scanRay walks up to count squares from sq in steps of delta, collecting
// squares until the ray is blocked. An own piece ends the ray before its
// square; an opponent piece ends it after (capture). count is the number of
// on-board squares in that direction, so the walk never wraps an edge.
func scanRay(dst []Square, own, opp uint64, sq Square, delta, count int) []Square {
	for i := 0; i < count; i++ {
		sq += Square(delta)
		bit := bb(sq)
		if own&bit != 0 {
			break
		}
		dst = append(dst, sq)
		if opp&bit != 0 {
			break
		}
	}
	return dst
}

// rookDestinations emits the four orthogonal rays: left, right, up, down.
func rookDestinations(dst []Square, sq Square, own, opp uint64) []Square {
	file := sq.File()
	rank := sq.Rank()
	dst = scanRay(dst, own, opp, sq, -1, file)
	dst = scanRay(dst, own, opp, sq, +1, 7-file)
	dst = scanRay(dst, own, opp, sq, +8, 7-rank)
	dst = scanRay(dst, own, opp, sq, -8, rank)
	return dst
}

// bishopDestinations emits the four diagonal rays: NW, SW, NE, SE. Each ray
// is bounded by the remaining ranks and files toward its edge.
func bishopDestinations(dst []Square, sq Square, own, opp uint64) []Square {
	file := sq.File()
	rank := sq.Rank()
	dst = scanRay(dst, own, opp, sq, +7, min(7-rank, file))
	dst = scanRay(dst, own, opp, sq, -9, min(rank, file))
	dst = scanRay(dst, own, opp, sq, +9, min(7-rank, 7-file))
	dst = scanRay(dst, own, opp, sq, -7, min(rank, 7-file))
	return dst
}

// pawnDestinations emits the forward push, the double push from the starting
// rank, then captures. Pushes require empty destinations; the double push
// additionally requires the intermediate square to be empty. Captures require
// an opponent piece on the diagonal target. En-passant capture is not
// generated.
func (b *Board) pawnDestinations(dst []Square, sq Square, us Color) []Square {
	occ := b.AllOccupancy()
	opp := b.occupancy[1-int(us)]
	rank := sq.Rank()

	if us == White {
		if rank < 7 && occ&bb(sq+8) == 0 {
			dst = append(dst, sq+8)
			if rank == 1 && occ&bb(sq+16) == 0 {
				dst = append(dst, sq+16)
			}
		}
	} else {
		if rank > 0 && occ&bb(sq-8) == 0 {
			dst = append(dst, sq-8)
			if rank == 6 && occ&bb(sq-16) == 0 {
				dst = append(dst, sq-16)
			}
		}
	}
	return appendMask(dst, pawnAttacks[us][sq]&opp)
}

// appendMask appends every set square of the mask in ascending order.
func appendMask(dst []Square, mask uint64) []Square {
	for mask != 0 {
		dst = append(dst, Square(popLSB(&mask)))
	}
	return dst
}
