package kno3

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) rune {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '?' // should not happen for valid pieces
	}
}

// ParseFEN parses a FEN string and returns a new GameState set up to that
// position. All six fields are required; the two trailing move counters are
// validated but not modeled. Returns an error wrapping ErrInvalidFEN (or
// ErrUnsupportedPiece for an unknown glyph) if the FEN cannot be parsed.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	g := &GameState{enPassantSquare: NoSquare}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}

	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, fmt.Errorf("%w: empty rank description", ErrInvalidFEN)
		}
		rankIndex := 7 - i // first rank string is rank 8, down to rank 1
		file := 0
		prevDigit := false
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				// Digit: skip that many files. One run of empty files is
				// written as one digit; back-to-back digits are malformed.
				if prevDigit {
					return nil, fmt.Errorf("%w: consecutive digits in rank", ErrInvalidFEN)
				}
				file += int(ch - '0')
				prevDigit = true
			} else {
				piece := pieceFromChar(ch)
				if piece == NoPiece {
					return nil, fmt.Errorf("%w: %q", ErrUnsupportedPiece, ch)
				}
				if file >= 8 {
					return nil, fmt.Errorf("%w: too many squares in rank", ErrInvalidFEN)
				}
				g.board.addPiece(Square(rankIndex*8+file), piece)
				file++
				prevDigit = false
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank does not have 8 columns", ErrInvalidFEN)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		g.sideToMove = White
	case "b":
		g.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	// 3. Castling rights
	g.castlingRights = 0
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			var right CastlingRights
			switch ch {
			case 'K':
				right = CastlingWhiteK
			case 'Q':
				right = CastlingWhiteQ
			case 'k':
				right = CastlingBlackK
			case 'q':
				right = CastlingBlackQ
			default:
				return nil, fmt.Errorf("%w: invalid castling rights character %q", ErrInvalidFEN, ch)
			}
			if g.castlingRights&right != 0 {
				return nil, fmt.Errorf("%w: duplicate castling rights character %q", ErrInvalidFEN, ch)
			}
			g.castlingRights |= right
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, fields[3])
		}
		// A double push can only ever skip rank 3 or rank 6.
		if r := sq.Rank(); r != 2 && r != 5 {
			return nil, fmt.Errorf("%w: en passant square %q not on rank 3 or 6", ErrInvalidFEN, fields[3])
		}
		g.enPassantSquare = sq
	}

	// 5-6. Halfmove clock and fullmove number: accepted, checked, not modeled.
	for _, f := range fields[4:] {
		if _, err := strconv.Atoi(f); err != nil {
			return nil, fmt.Errorf("%w: move counter %q is not a number", ErrInvalidFEN, f)
		}
	}

	return g, nil
}

// ToFEN produces the FEN string representation of the position. The move
// counters are not modeled and always render as "0 1".
func (g *GameState) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			p := g.board.PieceAt(Square(rank*8 + file))
			if p == NoPiece {
				emptyCount++
			} else {
				if emptyCount > 0 {
					sb.WriteByte('0' + byte(emptyCount))
					emptyCount = 0
				}
				sb.WriteRune(charFromPiece(p))
			}
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if g.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if g.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if g.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if g.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if g.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if g.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(g.enPassantSquare.String())

	// 5-6. Halfmove clock and fullmove number placeholders
	sb.WriteString(" 0 1")
	return sb.String()
}
