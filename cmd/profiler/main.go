package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof" // Import for side effects: registers pprof handlers
	"os"
	"runtime"
	"time"

	"github.com/INLOpen/treearray"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

// config defines the configuration options for profiler.
type config struct {
	Listen  string `short:"l" long:"listen" description:"Address of the pprof HTTP server"`
	Items   int    `short:"n" long:"items" description:"Number of elements to insert"`
	Front   bool   `long:"front" description:"Insert every element at the front instead of appending"`
	Reserve bool   `long:"reserve" description:"Reserve capacity for all elements up front"`
	Clones  int    `long:"clones" description:"Number of clones to take and write to after loading"`
	Exit    bool   `long:"exit" description:"Exit once the workload is done instead of staying up for profiling"`
}

var log btclog.Logger

// validate checks the parsed options.
func (cfg *config) validate() error {
	if cfg.Items <= 0 {
		return fmt.Errorf("items must be positive, got %d", cfg.Items)
	}
	if cfg.Clones < 0 {
		return fmt.Errorf("clones must not be negative, got %d", cfg.Clones)
	}
	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	backendLogger := btclog.NewBackend(os.Stdout)
	defer os.Stdout.Sync()
	log = backendLogger.Logger("MAIN")
	arrLog := backendLogger.Logger("TARR")
	arrLog.SetLevel(btclog.LevelDebug)
	treearray.UseLogger(arrLog)

	cfg := config{
		Listen: "localhost:6060",
		Items:  2_000_000,
	}
	if _, err := flags.Parse(&cfg); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	// เปิด pprof endpoint ผ่าน HTTP server ใน goroutine แยก
	go func() {
		log.Infof("Starting pprof server on http://%s/debug/pprof/", cfg.Listen)
		if err := http.ListenAndServe(cfg.Listen, nil); err != nil {
			log.Errorf("pprof server failed: %v", err)
		}
	}()
	time.Sleep(100 * time.Millisecond)

	log.Infof("Starting treearray insertion workload: %d items, front=%v, reserve=%v",
		cfg.Items, cfg.Front, cfg.Reserve)

	runtime.GC()
	a := treearray.New[int]()
	if cfg.Reserve {
		a.Reserve(cfg.Items)
	}
	for i := 0; i < cfg.Items; i++ {
		if cfg.Front {
			a.Prepend(i)
		} else {
			a.Append(i)
		}
	}
	log.Infof("Finished inserting %d items. Length: %d, capacity: %d", cfg.Items, a.Len(), a.Cap())

	// Every clone pays for one arena copy on its first write.
	clones := make([]*treearray.Array[int], 0, cfg.Clones)
	for i := 0; i < cfg.Clones; i++ {
		c := a.Clone()
		c.Set(i%a.Len(), -i)
		clones = append(clones, c)
	}
	if cfg.Clones > 0 {
		log.Infof("Wrote to %d clones", len(clones))
	}

	if cfg.Exit {
		return nil
	}
	log.Info("Program is keeping alive for profiling. Press Ctrl+C to exit.")
	select {}
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
