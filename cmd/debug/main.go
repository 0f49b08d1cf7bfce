package main

import (
	"flag"
	"fmt"
	"log"

	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", xiangqi.StartFEN, "position to inspect")
	flag.Parse()

	pos, err := xiangqi.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parse fen: %v", err)
	}

	fmt.Println(pos)
	fmt.Println("FEN:", pos.FEN())

	pseudo := pos.GenerateMoves(make([]xiangqi.Move, 0, xiangqi.MaxMoves), false)
	legal := pos.GenerateLegalMoves()
	fmt.Println("Pseudo legal moves:", len(pseudo))
	fmt.Println("Legal moves:", len(legal))
	for _, m := range legal {
		fmt.Printf("  %s", m)
	}
	fmt.Println()
}
