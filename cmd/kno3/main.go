// Command kno3 is a single-shot CLI for inspecting and mutating a chess
// position given as a FEN string.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chanson02/KnO3/kno3"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	fen := flag.String("fen", "", "FEN string representing the current game (required)")
	move := flag.String("move", "", "Move a piece (ex: 'e2:e4')")
	show := flag.Bool("show", false, "Print the state of the board")
	evaluate := flag.Bool("evaluate", false, "Print the material balance; positive favors White")
	getMoves := flag.String("get-moves", "", "List destinations for the piece at the given square (ex: 'e2')")
	flag.Parse()

	if *fen == "" {
		flag.Usage()
		log.Fatal().Msg("-fen is required")
	}

	game, err := kno3.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing FEN")
	}

	// Setters

	if *move != "" {
		from, to, err := parseMove(*move)
		if err != nil {
			log.Fatal().Err(err).Str("move", *move).Msg("parsing move")
		}
		if err := game.ApplyMove(from, to); err != nil {
			log.Fatal().Err(err).Str("move", *move).Msg("applying move")
		}
	}

	// Getters

	if *show {
		fmt.Print(game.String())
	}
	if *evaluate {
		fmt.Println(game.MaterialScore())
	}
	if *getMoves != "" {
		sq, err := kno3.ParseSquare(*getMoves)
		if err != nil {
			log.Fatal().Err(err).Msg("parsing square")
		}
		moves, ok := game.PossibleMoves(sq)
		if !ok {
			log.Fatal().Str("square", *getMoves).Msg("no piece at square")
		}
		coords := make([]string, len(moves))
		for i, m := range moves {
			coords[i] = m.String()
		}
		fmt.Println(strings.Join(coords, " "))
	}
}

// parseMove splits a "from:to" coordinate pair into two squares.
func parseMove(s string) (kno3.Square, kno3.Square, error) {
	fromStr, toStr, ok := strings.Cut(s, ":")
	if !ok {
		return kno3.NoSquare, kno3.NoSquare, fmt.Errorf("move must be formatted as from:to")
	}
	from, err := kno3.ParseSquare(strings.ToLower(fromStr))
	if err != nil {
		return kno3.NoSquare, kno3.NoSquare, err
	}
	to, err := kno3.ParseSquare(strings.ToLower(toStr))
	if err != nil {
		return kno3.NoSquare, kno3.NoSquare, err
	}
	return from, to, nil
}
