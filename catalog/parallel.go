package catalog

import (
	"io"
	"runtime"
	"sync"

	tg "github.com/tidwall/tg-go"
)

// BuildInput is one unbuilt catalog member: a caller-supplied constructor
// deferred to a worker goroutine, plus the metadata that accompanies it
// into the resulting Entry.
type BuildInput struct {
	Key      string
	Priority int
	Tags     []string

	// Build produces the geometry for this entry. Called from a worker
	// goroutine; it must not share mutable state with other Build calls.
	Build func() (tg.Geometry, error)
}

// BuildOptions controls BuildParallel's worker pool.
type BuildOptions struct {
	// Workers is the number of concurrent builder goroutines. If 0,
	// defaults to runtime.NumCPU().
	Workers int

	// SkipErrors decides the result of a build in which every input
	// fails: when false, BuildParallel returns a nil Catalog; when true,
	// it returns an empty Catalog. Either way, failed inputs are left
	// out of the Catalog and reported in the returned errors.
	SkipErrors bool

	// ErrorLog, if set, receives one line per failed input.
	ErrorLog io.Writer
}

// BuildParallel builds each input's geometry concurrently (the expensive
// step for large inputs — parsing WKT/WKB, computing a ring's Natural
// Index) and then performs a single single-threaded R-tree bulk insert,
// mirroring the worker-pool-then-serial-merge shape used to load many
// charts concurrently before indexing them.
func BuildParallel(inputs []BuildInput, opts BuildOptions) (*Catalog, []error) {
	if len(inputs) == 0 {
		return Build(nil), nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	type result struct {
		index int
		entry Entry
		err   error
	}

	jobs := make(chan int, len(inputs))
	results := make(chan result, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				in := inputs[i]
				g, err := in.Build()
				if err != nil {
					results <- result{index: i, err: err}
					continue
				}
				results <- result{index: i, entry: Entry{
					Key:      in.Key,
					Geom:     g,
					Priority: in.Priority,
					Tags:     in.Tags,
				}}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	entries := make([]Entry, len(inputs))
	ok := make([]bool, len(inputs))
	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			if opts.ErrorLog != nil {
				io.WriteString(opts.ErrorLog, "catalog: build failed for "+inputs[r.index].Key+": "+r.err.Error()+"\n")
			}
			if !opts.SkipErrors {
				continue
			}
			continue
		}
		entries[r.index] = r.entry
		ok[r.index] = true
	}

	built := make([]Entry, 0, len(entries))
	for i, e := range entries {
		if ok[i] {
			built = append(built, e)
		}
	}

	if len(errs) > 0 && len(built) == 0 && !opts.SkipErrors {
		return nil, errs
	}

	return Build(built), errs
}
