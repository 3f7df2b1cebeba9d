package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Skies-Seas/internal/game"
	"github.com/Garsondee/Skies-Seas/internal/logging"
	"github.com/Garsondee/Skies-Seas/internal/record"
)

type runStats struct {
	runIndex int
	seed     int64
	stats    game.MatchStats
	err      error
}

type aggregateStats struct {
	runs       int
	finished   int
	failed     int
	wins       [2]int
	turns      []int
	shots      [2]int
	hits       [2]int
	sunk       [2]int
	disabled   [2]int
	returns    [2]int
	recons     [2]int
	fogCleared [2]int
	queries    [2]int
	queryYes   [2]int
}

func main() {
	var runs int
	var maxTurns int
	var seedBase int64
	var seedStep int64
	var reconChance float64
	var airChance float64
	var queries bool
	var recordPath string
	var logLevel string

	flag.IntVar(&runs, "runs", 20, "number of self-play games")
	flag.IntVar(&maxTurns, "max-turns", 1000, "turn cap per game")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&reconChance, "recon-chance", 0.1, "probability of a recon instead of a strike")
	flag.Float64Var(&airChance, "air-chance", 0.25, "probability of attacking the air layer")
	flag.BoolVar(&queries, "queries", true, "ask a question whenever air superiority allows")
	flag.StringVar(&recordPath, "record", "", "archive every game to this sqlite file")
	flag.StringVar(&logLevel, "log-level", "warn", "log level for game events")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxTurns <= 0 {
		fmt.Println("error: -max-turns must be > 0")
		return
	}
	if reconChance < 0 || reconChance > 1 || airChance < 0 || airChance > 1 {
		fmt.Println("error: -recon-chance and -air-chance must be within [0,1]")
		return
	}

	log := logging.NewConsole(logging.ParseLevel(logLevel), nil)
	sinks := []game.EventSink{logging.NewEventLogger(log)}
	if recordPath != "" {
		rec, err := record.Open(record.Config{
			Driver:    "sqlite",
			Path:      recordPath,
			PlayerOne: game.DefaultPlayerOne,
			PlayerTwo: game.DefaultPlayerTwo,
		}, log)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		defer closeRecorder(rec, log)
		sinks = append(sinks, rec)
	}

	fmt.Printf("=== Headless Self-Play Report ===\n")
	fmt.Printf("runs=%d max_turns=%d seed_base=%d seed_step=%d recon=%.2f air=%.2f queries=%t\n\n",
		runs, maxTurns, seedBase, seedStep, reconChance, airChance, queries)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runSelfPlay(i+1, seed, sinks,
			game.WithMaxTurns(maxTurns),
			game.WithReconChance(reconChance),
			game.WithAirChance(airChance),
			game.WithQueries(queries),
			game.WithInvariantChecks(true),
		)
		all = append(all, rs)
		printRun(rs)
	}

	fmt.Print(formatAggregate(aggregate(all)))
}

func closeRecorder(rec *record.Recorder, log zerolog.Logger) {
	if err := rec.Err(); err != nil {
		log.Warn().Err(err).Msg("Archive had write errors")
	}
	if err := rec.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close archive")
	}
}

func runSelfPlay(runIndex int, seed int64, sinks []game.EventSink, opts ...game.SelfPlayOption) runStats {
	sessOpts := make([]game.SessionOption, 0, len(sinks))
	for _, s := range sinks {
		sessOpts = append(sessOpts, game.WithEventSink(s))
	}
	opts = append(opts, game.WithSelfPlaySeed(seed), game.WithSessionOptions(sessOpts...))
	stats, err := game.NewSelfPlay(opts...).Run()
	return runStats{runIndex: runIndex, seed: seed, stats: stats, err: err}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if rs.err != nil {
		fmt.Printf("error: %v\n", rs.err)
	}
	fmt.Print(rs.stats.String())
	fmt.Println()
}

func aggregate(all []runStats) aggregateStats {
	agg := aggregateStats{runs: len(all)}
	for _, rs := range all {
		if rs.err != nil {
			agg.failed++
			continue
		}
		m := rs.stats
		if m.Finished() {
			agg.finished++
			agg.wins[m.Winner]++
			agg.turns = append(agg.turns, m.Turns)
		}
		for i := 0; i < 2; i++ {
			agg.shots[i] += m.Shots[i]
			agg.hits[i] += m.Hits[i]
			agg.sunk[i] += m.Sunk[i]
			agg.disabled[i] += m.Disabled[i]
			agg.returns[i] += m.Returns[i]
			agg.recons[i] += m.Recons[i]
			agg.fogCleared[i] += m.FogCleared[i]
			agg.queries[i] += m.Queries[i]
			agg.queryYes[i] += m.QueryYes[i]
		}
	}
	return agg
}

// accuracy is hits/shots over all runs for player i.
func (a aggregateStats) accuracy(i int) float64 {
	if a.shots[i] == 0 {
		return 0
	}
	return float64(a.hits[i]) / float64(a.shots[i])
}

// winRate is the share of finished games won by player i.
func (a aggregateStats) winRate(i int) float64 {
	if a.finished == 0 {
		return 0
	}
	return float64(a.wins[i]) / float64(a.finished)
}

func formatAggregate(a aggregateStats) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, "=== Aggregate ===")
	fmt.Fprintf(&sb, "runs=%d finished=%d capped=%d failed=%d\n",
		a.runs, a.finished, a.runs-a.finished-a.failed, a.failed)
	fmt.Fprintf(&sb, "turns: avg=%s median=%s min=%s max=%s\n",
		avgString(a.turns), medianString(a.turns), minString(a.turns), maxString(a.turns))
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&sb, "P%d wins=%d (%.0f%%) acc=%.2f avg_sunk=%.1f avg_disabled=%.1f avg_returns=%.1f avg_recon=%.1f avg_fog=%.1f queries=%d yes=%d\n",
			i, a.wins[i], 100*a.winRate(i), a.accuracy(i),
			avg(a.sunk[i], a.runs), avg(a.disabled[i], a.runs), avg(a.returns[i], a.runs),
			avg(a.recons[i], a.runs), avg(a.fogCleared[i], a.runs),
			a.queries[i], a.queryYes[i])
	}
	return sb.String()
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func medianString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	s := append([]int(nil), vals...)
	sort.Ints(s)
	n := len(s)
	if n%2 == 1 {
		return fmt.Sprintf("%d", s[n/2])
	}
	return fmt.Sprintf("%.1f", float64(s[n/2-1]+s[n/2])/2)
}

func minString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	m := vals[0]
	for _, v := range vals[1:] {
		m = min(m, v)
	}
	return fmt.Sprintf("%d", m)
}

func maxString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	m := vals[0]
	for _, v := range vals[1:] {
		m = max(m, v)
	}
	return fmt.Sprintf("%d", m)
}
