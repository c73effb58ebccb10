package kno3

import "strings"

// String renders the board rank by rank from White's perspective with file
// and rank legends, pieces as FEN glyphs and empty squares as dots.
func (g *GameState) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			p := g.board.PieceAt(Square(rank*8 + file))
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(charFromPiece(p))
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
