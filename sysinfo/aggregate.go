package sysinfo

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"prismfetch/logging"
)

// Aggregator runs every scheduled probe call once on a bounded pool and
// assembles the rows in schedule order.
type Aggregator struct {
	probe    Probe
	workers  int
	log      *logging.Logger
	schedule []entry
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithWorkers bounds the number of concurrent probe calls. Values below one
// mean one.
func WithWorkers(n int) Option {
	return func(a *Aggregator) { a.workers = n }
}

// WithLogger sets where recovered probe panics are reported.
func WithLogger(log *logging.Logger) Option {
	return func(a *Aggregator) { a.log = log }
}

// NewAggregator returns an Aggregator over p. The pool defaults to
// GOMAXPROCS workers.
func NewAggregator(p Probe, opts ...Option) *Aggregator {
	a := &Aggregator{
		probe:    p,
		workers:  runtime.GOMAXPROCS(0),
		schedule: defaultSchedule(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.workers < 1 {
		a.workers = 1
	}
	return a
}

// Run blocks until every probe call has finished. Each task owns one slot,
// so the result order is the schedule order however the calls interleave.
// A task that panics contributes no rows; nothing aborts the run.
func (a *Aggregator) Run() Snapshot {
	slots := make([][]Record, len(a.schedule))
	distro := UnknownID

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, e := range a.schedule {
		i, e := i, e
		g.Go(func() error {
			slots[i] = a.runEntry(e)
			return nil
		})
	}
	g.Go(func() error {
		distro = a.distroID()
		return nil
	})
	_ = g.Wait()

	var records []Record
	for _, slot := range slots {
		for _, r := range slot {
			if r.Label != "" && r.Value == "" {
				continue
			}
			records = append(records, r)
		}
	}
	return Snapshot{Records: records, DistroID: distro}
}

func (a *Aggregator) runEntry(e entry) (rows []Record) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Debug("probe %s panicked: %v", e.name, r)
			rows = nil
		}
	}()
	return e.run(a.probe)
}

func (a *Aggregator) distroID() (id string) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Debug("probe DistroID panicked: %v", r)
			id = UnknownID
		}
	}()
	if id = a.probe.DistroID(); id == "" {
		return UnknownID
	}
	return id
}
