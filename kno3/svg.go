package kno3

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

const svgSquareSize = 45

// WriteSVG renders the position as an 8x8 SVG board for UIs that want a
// graphical snapshot. Pieces are drawn as their FEN glyphs.
func (g *GameState) WriteSVG(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(8*svgSquareSize, 8*svgSquareSize)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := file * svgSquareSize
			y := (7 - rank) * svgSquareSize
			fill := "fill:#b58863"
			if (rank+file)%2 == 1 {
				fill = "fill:#f0d9b5"
			}
			canvas.Rect(x, y, svgSquareSize, svgSquareSize, fill)

			p := g.board.PieceAt(Square(rank*8 + file))
			if p == NoPiece {
				continue
			}
			style := "font-size:30px;text-anchor:middle;fill:#000"
			if p.Color() == White {
				style = "font-size:30px;text-anchor:middle;fill:#fff;stroke:#000"
			}
			canvas.Text(x+svgSquareSize/2, y+svgSquareSize/2+10, string(charFromPiece(p)), style)
		}
	}
	canvas.End()
}
