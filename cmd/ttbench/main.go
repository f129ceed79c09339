// ════════════════════════════════════════════════════════════════════════════════════════════════
// Transposition Table Benchmark Harness
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Game-Tree Search Engine Support Library
// Component: Benchmark CLI
//
// Description:
//   Drives a table with synthetic probe/save traffic from several pinned worker goroutines,
//   reports throughput and hashfull, and persists each run's summary to a local sqlite database
//   so successive runs can be compared.
//
// Architecture:
//   - Phase 1: parse flags, open run-history database
//   - Phase 2: allocate table, spin up pinned workers, each fed from its own job ring
//   - Phase 3: run for the configured duration, collect stats
//   - Phase 4: report as JSON, persist to the run-history table
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"database/sql"
	"flag"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sugawarayuuta/sonnet"

	"github.com/petrel-engine/transtable"
	"github.com/petrel-engine/transtable/internal/affinity"
	"github.com/petrel-engine/transtable/internal/diag"
	"github.com/petrel-engine/transtable/internal/jobring"
	"github.com/petrel-engine/transtable/internal/keysource"
)

type runReport struct {
	MegabytesRequested int     `json:"megabytes_requested"`
	Workers            int     `json:"workers"`
	DurationSeconds    float64 `json:"duration_seconds"`
	Probes             uint64  `json:"probes"`
	Saves              uint64  `json:"saves"`
	Hits               uint64  `json:"hits"`
	HashfullPermille   int     `json:"hashfull_permille"`
}

func main() {
	mb := flag.Int("mb", 64, "table size in megabytes")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	duration := flag.Duration("duration", 2*time.Second, "how long to run")
	dbPath := flag.String("db", "ttbench.db", "sqlite database for run history")
	flag.Parse()

	db := openRunHistory(*dbPath)
	defer db.Close()

	table := transtable.New(*mb, transtable.Config{Threads: *workers})

	report := run(table, *workers, *duration)
	report.MegabytesRequested = *mb

	out, err := sonnet.Marshal(report)
	if err != nil {
		diag.Fatal("ttbench: encode report", err)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))

	if err := persistRun(db, report); err != nil {
		diag.Warn("ttbench: persist run", err)
	}
}

// run feeds synthetic Jobs from one generator goroutine, round-robin
// through one single-consumer ring per worker, to workers pinned cores
// apart, each of which alternates probe and save against the shared
// table, for the given duration.
func run(table *transtable.Table, workers int, duration time.Duration) runReport {
	rings := make([]*jobring.Ring, workers)
	for i := range rings {
		rings[i] = jobring.New(1 << 16)
	}
	stop := make(chan struct{})

	var probes, saves, hits uint64

	if workers > 0 {
		go func() {
			stream := keysource.New(1)
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				default:
					rings[i%workers].Push(jobring.Job{Key: stream.Next(), Depth: int16(stream.Next() % 32)})
				}
			}
		}()
	}

	for i := 0; i < workers; i++ {
		go func(id int) {
			if affinity.Available {
				_ = affinity.Pin(id)
			}
			for {
				select {
				case <-stop:
					return
				default:
				}
				job, ok := rings[id].Pop()
				if !ok {
					continue
				}
				if _, hit := table.Probe(job.Key); hit {
					atomic.AddUint64(&hits, 1)
				}
				atomic.AddUint64(&probes, 1)
				table.Save(job.Key, 0, false, transtable.BoundExact, job.Depth, 0, 0)
				atomic.AddUint64(&saves, 1)
			}
		}(i)
	}

	start := time.Now()
	time.Sleep(duration)
	close(stop)
	elapsed := time.Since(start)

	return runReport{
		Workers:          workers,
		DurationSeconds:  elapsed.Seconds(),
		Probes:           atomic.LoadUint64(&probes),
		Saves:            atomic.LoadUint64(&saves),
		Hits:             atomic.LoadUint64(&hits),
		HashfullPermille: table.Hashfull(),
	}
}

func openRunHistory(path string) *sql.DB {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		diag.Fatal("ttbench: open run history", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		megabytes_requested INTEGER,
		workers INTEGER,
		duration_seconds REAL,
		probes INTEGER,
		saves INTEGER,
		hits INTEGER,
		hashfull_permille INTEGER
	)`)
	if err != nil {
		diag.Fatal("ttbench: create run history table", err)
	}
	return db
}

func persistRun(db *sql.DB, r runReport) error {
	_, err := db.Exec(
		`INSERT INTO runs (megabytes_requested, workers, duration_seconds, probes, saves, hits, hashfull_permille)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.MegabytesRequested, r.Workers, r.DurationSeconds, r.Probes, r.Saves, r.Hits, r.HashfullPermille,
	)
	return err
}
