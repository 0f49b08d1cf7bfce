package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", xiangqi.StartFEN, "starting position")
	depth := flag.Int("depth", 4, "perft depth")
	divide := flag.Bool("divide", false, "split node counts per root move")
	flag.Parse()

	pos, err := xiangqi.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parse fen: %v", err)
	}

	e := engine.NewEngine()
	start := time.Now()

	var nodes uint64
	if *divide {
		entries, total := e.Divide(pos, *depth)
		for _, en := range entries {
			fmt.Printf("%s: %d\n", en.Move, en.Nodes)
		}
		nodes = total
	} else {
		nodes = e.Perft(pos, *depth)
	}

	elapsed := time.Since(start)
	nps := int64(float64(nodes) / elapsed.Seconds())
	fmt.Printf("perft(%d) = %d  time=%v  nps=%d\n", *depth, nodes, elapsed, nps)
}
