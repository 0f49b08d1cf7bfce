package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

type policy struct {
	Name string
	Pick func(*xiangqi.Position, []xiangqi.Move) xiangqi.Move
}

func greedyPolicy(e *engine.Engine) policy {
	return policy{
		Name: "greedy",
		Pick: func(pos *xiangqi.Position, _ []xiangqi.Move) xiangqi.Move {
			return e.PickMove(pos)
		},
	}
}

func randomPolicy(rng *rand.Rand) policy {
	return policy{
		Name: "random",
		Pick: func(_ *xiangqi.Position, legal []xiangqi.Move) xiangqi.Move {
			if len(legal) == 0 {
				return xiangqi.NoMove
			}
			return legal[rng.Intn(len(legal))]
		},
	}
}

func main() {
	maxMoves := flag.Int("maxmoves", 200, "max moves per game")
	seed := flag.Int64("seed", 1, "random policy seed")
	games := flag.Int("games", 1, "number of games to play")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	// pprof 常开，方便看生成器和 make/undo 的火焰图
	go func() {
		log.Println("pprof listening on :6060")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Printf("pprof failed: %v", err)
		}
	}()

	e := engine.NewEngine()
	rng := rand.New(rand.NewSource(*seed))
	greedy := greedyPolicy(e)
	random := randomPolicy(rng)

	wins := map[string]int{}
	for g := 0; g < *games; g++ {
		// 轮流执红，别让先手优势污染比分
		red, black := greedy, random
		if g%2 == 1 {
			red, black = random, greedy
		}
		fmt.Printf("=== Game %d: red [%s] vs black [%s] ===\n", g+1, red.Name, black.Name)

		winner := playGame(red, black, *maxMoves, *verbose)
		switch winner {
		case xiangqi.Red:
			wins[red.Name]++
			fmt.Printf("Result: red [%s] wins\n", red.Name)
		case xiangqi.Black:
			wins[black.Name]++
			fmt.Printf("Result: black [%s] wins\n", black.Name)
		default:
			wins["draw"]++
			fmt.Println("Result: draw")
		}
	}

	fmt.Printf("\n=== Final score ===\ngreedy: %d\nrandom: %d\ndraws:  %d\n",
		wins["greedy"], wins["random"], wins["draw"])
}

// playGame 走完一盘并返回胜方；NoSide 表示和棋。
// 撤销帧逐步堆上新建，挂在切片里保证整条链存活。
func playGame(red, black policy, maxMoves int, verbose bool) xiangqi.Side {
	pos := xiangqi.NewPosition()
	var frames []*xiangqi.StateFrame

	for i := 0; i < maxMoves; i++ {
		legal := pos.GenerateLegalMoves()
		if len(legal) == 0 {
			// 无着可走，困毙或被将死
			if pos.SideToMove() == xiangqi.Red {
				return xiangqi.Black
			}
			return xiangqi.Red
		}

		p := red
		if pos.SideToMove() == xiangqi.Black {
			p = black
		}
		m := p.Pick(pos, legal)

		st := &xiangqi.StateFrame{}
		if !pos.MakeMove(m, st) {
			log.Fatalf("policy %s picked illegal move %s", p.Name, m)
		}
		frames = append(frames, st)

		if verbose {
			log.Printf("move %d: %s plays %s  eval=%d rule60=%d",
				i+1, p.Name, m, engine.Evaluate(pos), pos.Rule60())
		}

		if pos.IsRepetition() {
			fmt.Printf("Repetition after %d moves\n", i+1)
			return xiangqi.NoSide
		}
		if pos.Rule60() >= 120 {
			fmt.Printf("Rule 60 draw after %d moves\n", i+1)
			return xiangqi.NoSide
		}
	}

	fmt.Println(pos)
	return xiangqi.NoSide
}
