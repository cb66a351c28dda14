// Command perft runs a node-count search from the standard opening
// position, for validating and benchmarking the move generator.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"chesscore/board"
)

func main() {
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-root-move node counts")
	repeat := flag.Int("repeat", 1, "repeat the search N times and report aggregate timing")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	p := board.NewGame()

	if *divide {
		div := p.PerftDivide(*depth)
		type kv struct {
			move  string
			nodes uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].move < arr[j].move })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.move, x.nodes)
		}
		fmt.Printf("total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += p.Perft(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()
	log.Printf("depth=%d nodes=%d elapsed=%s nps=%.0f", *depth, totalNodes, elapsed, nps)
}
