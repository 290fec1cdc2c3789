package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/joshbohde/park"
	"github.com/joshbohde/park/stats"
	"golang.org/x/sync/errgroup"
)

func msToWait(perSec int64) time.Duration {
	ms := rand.ExpFloat64() / (float64(perSec) / 1000)
	return time.Duration(ms * float64(time.Millisecond))
}

type Simulation struct {
	Method       string
	Visitors     int
	Capacity     int
	ArrivePerSec int64
	DwellPerSec  int64
	Gates        []string
	Completed    uint64
	Final        int
	Stats        stats.Waits
}

// Run pushes Visitors concurrent visits through the turnstile: each one
// arrives at an exponentially distributed interval, enters through a random
// gate, dwells, and leaves through another random gate. The entry wait is
// what gets timed.
func (sim *Simulation) Run(t Turnstile) {
	g := errgroup.Group{}

	for i := 0; i < sim.Visitors; i++ {
		time.Sleep(msToWait(sim.ArrivePerSec))

		g.Go(func() error {
			in := sim.Gates[rand.Intn(len(sim.Gates))]
			out := sim.Gates[rand.Intn(len(sim.Gates))]

			timer := sim.Stats.Time()
			t.Enter(in)
			timer.Mark()

			time.Sleep(msToWait(sim.DwellPerSec))
			t.Leave(out)

			atomic.AddUint64(&sim.Completed, 1)
			return nil
		})
	}

	g.Wait()
	sim.Final = t.Inside()
	sim.Stats.Close()
}

func (sim *Simulation) String() string {
	return fmt.Sprintf("method=%s visitors=%d capacity=%d arrive=%d dwell=%d completed=%d final=%d p50=%s p95=%s p99=%s",
		sim.Method, sim.Visitors, sim.Capacity,
		sim.ArrivePerSec, sim.DwellPerSec,
		atomic.LoadUint64(&sim.Completed), sim.Final,
		sim.Stats.Query(0.5), sim.Stats.Query(0.95), sim.Stats.Query(0.99))
}

// movementLogger returns a status-line reporter when verbose, nil otherwise.
func movementLogger(verbose bool) park.Reporter {
	if !verbose {
		return nil
	}
	return park.NewLogReporter(log.New(os.Stdout, "", log.LstdFlags))
}

func main() {
	log.SetOutput(os.Stdout)

	visitors := flag.Int("visitors", 1000, "Number of visits to simulate")
	capacity := flag.Int("capacity", 50, "Park capacity")
	arrive := flag.Int64("arrive-per-sec", 1000, "Mean visitor arrival rate")
	dwell := flag.Int64("dwell-per-sec", 500, "Mean rate at which visitors leave once inside")
	gates := flag.String("gates", "north,south,east,west", "Comma separated gate names")
	verbose := flag.Bool("verbose", false, "Log a status block for every movement")

	flag.Parse()

	gateNames := strings.Split(*gates, ",")

	run := func(method string, t Turnstile) {
		sim := Simulation{
			Method:       method,
			Visitors:     *visitors,
			Capacity:     *capacity,
			ArrivePerSec: *arrive,
			DwellPerSec:  *dwell,
			Gates:        gateNames,
			Stats:        stats.New(),
		}
		sim.Run(t)
		log.Printf("%s", sim.String())
	}

	monitor := NewMonitor(*capacity, movementLogger(*verbose))
	run("monitor", monitor)
	run("semaphore", NewWeighted(*capacity))

	if *verbose {
		for gate, n := range monitor.p.Gates() {
			log.Printf("gate=%s net=%d", gate, n)
		}
	}
}
