package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/INLOpen/treearray"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

var log btclog.Logger

// positions returns the insert position of every element for the workload.
func positions(cfg *config) []int {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed>>1))
	pos := make([]int, cfg.Items)
	for i := range pos {
		switch cfg.Workload {
		case "append":
			pos[i] = i
		case "prepend":
			pos[i] = 0
		default:
			pos[i] = r.IntN(i + 1)
		}
	}
	return pos
}

// run inserts every element into a fresh Array built with opts and reports
// timing and allocation figures.
func run(name string, pos []int, opts ...treearray.Option[int]) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)

	var msBefore, msAfter runtime.MemStats
	runtime.ReadMemStats(&msBefore)
	start := time.Now()

	a := treearray.New(opts...)
	for i, p := range pos {
		a.Insert(p, i)
	}

	dur := time.Since(start)
	runtime.ReadMemStats(&msAfter)

	nsPerOp := float64(dur.Nanoseconds()) / float64(len(pos))
	allocDiff := int64(msAfter.TotalAlloc) - int64(msBefore.TotalAlloc)
	log.Infof("%-16s duration %s, ns/op %.1f, TotalAlloc diff %d bytes, len %d, cap %d",
		name, dur, nsPerOp, allocDiff, a.Len(), a.Cap())
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	backendLogger := btclog.NewBackend(os.Stdout)
	defer os.Stdout.Sync()
	log = backendLogger.Logger("MAIN")

	cfg := config{
		Items:      defaultItems,
		Workload:   defaultWorkload,
		DebugLevel: defaultDebugLevel,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	level, err := cfg.validate()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log.SetLevel(level)
	arrLog := backendLogger.Logger("TARR")
	arrLog.SetLevel(level)
	treearray.UseLogger(arrLog)

	pos := positions(&cfg)
	log.Infof("Running treearray insert microbench (N=%d, workload=%s)", cfg.Items, cfg.Workload)

	run("default", pos)
	run("factor-1.5", pos, treearray.WithGrowthFactor[int](1.5))
	run("reserved", pos, treearray.WithCapacity[int](cfg.Items))
	return nil
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
