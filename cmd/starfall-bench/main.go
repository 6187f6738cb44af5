package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"starfall/internal/app"
	"starfall/internal/game"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	sessions := flag.Int("sessions", 64, "number of seeded sessions to play")
	ticks := flag.Int("ticks", 20000, "tick budget per session")
	fireEvery := flag.Int("fire-every", 8, "minimum ticks between autopilot shots")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	base, err := cfg.GameConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DumpConfig {
		if err := base.WriteTOML(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *workers < 1 {
		*workers = 1
	}

	jobs := make(chan int64)
	results := make(chan game.RunResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				run := base
				run.Seed = seed
				results <- game.RunAutopilot(run, *fireEvery, *ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *sessions; i++ {
			jobs <- base.Seed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []game.RunResult
	outcomes := map[game.State]int{}
	totalScore := 0
	for res := range results {
		all = append(all, res)
		outcomes[res.State]++
		totalScore += res.Score
	}
	if len(all) == 0 {
		fmt.Println("No sessions played.")
		return
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Seed < all[j].Seed
	})
	elapsed := time.Since(start)

	fmt.Printf("Played %d sessions in %s: %d won, %d lost, %d still playing after %d ticks\n",
		len(all), elapsed.Round(time.Millisecond), outcomes[game.StateWin], outcomes[game.StateGameOver], outcomes[game.StatePlaying], *ticks)
	fmt.Printf("Average score %.1f\n", float64(totalScore)/float64(len(all)))

	fmt.Println("\nTop 5 sessions:")
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d score=%d kills=%d hits=%d lives=%d ticks=%d state=%s\n",
			i+1, res.Seed, res.Score, res.Kills, res.Hits, res.Lives, res.Ticks, res.State)
	}
}
