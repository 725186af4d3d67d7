package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/entrocheck/entrocheck/internal/loader"
	"github.com/entrocheck/entrocheck/internal/policy"
	"github.com/entrocheck/entrocheck/internal/scan"
	"github.com/entrocheck/entrocheck/internal/types"
)

// Config controls one engine run: what to scan, how to filter files, and
// the classification policy every file is scanned with.
type Config struct {
	Target          string // file or directory
	IncludeGlobs    string // comma-separated, doublestar syntax
	ExcludeGlobs    string
	MaxBytes        int64
	Threads         int // worker count, 0 = GOMAXPROCS
	DefaultExcludes bool
	Policy          *policy.Policy
	Progress        func()
}

// FileError records a file that could not be scanned during a directory
// run: unparseable content or a malformed tree. The run continues past it.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string { return e.Path + ": " + e.Err.Error() }

// Result is the outcome of one engine run.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesSkipped int // unsupported format or over the size gate
	FileErrors   []FileError
	Duration     time.Duration
}

// Run scans cfg.Target. A directory is walked and every supported config
// file is scanned, one whole file per worker; findings are assembled in
// discovery order no matter which worker finishes first. A single named
// file must be a supported format, and any load or scan failure there is
// fatal.
//
// Policy is immutable and trees are per-file, so workers share nothing
// mutable. ctx cancels between files; a file already being scanned finishes.
func Run(ctx context.Context, cfg Config) (Result, error) {
	var res Result
	if cfg.Policy == nil {
		return res, fmt.Errorf("engine: nil policy")
	}
	started := time.Now()

	info, err := os.Stat(cfg.Target)
	if err != nil {
		return res, err
	}

	if !info.IsDir() {
		fs, err := scanFile(cfg.Target, cfg.Target, cfg.Policy)
		if err != nil {
			return res, err
		}
		res.Findings = fs
		res.FilesScanned = 1
		res.Duration = time.Since(started)
		return res, nil
	}

	targets, skipped, err := collectTargets(cfg)
	if err != nil {
		return res, err
	}
	res.FilesSkipped = skipped

	type fileResult struct {
		findings []types.Finding
		err      error
	}
	results := make([]fileResult, len(targets))

	workers := cfg.Threads
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(targets) && len(targets) > 0 {
		workers = len(targets)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rel := targets[i]
				fs, err := scanFile(filepath.Join(cfg.Target, rel), rel, cfg.Policy)
				results[i] = fileResult{findings: fs, err: err}
				if cfg.Progress != nil {
					cfg.Progress()
				}
			}
		}()
	}

feed:
	for i := range targets {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for i, r := range results {
		switch {
		case r.err != nil:
			res.FileErrors = append(res.FileErrors, FileError{Path: targets[i], Err: r.err})
		default:
			res.FilesScanned++
			res.Findings = append(res.Findings, r.findings...)
		}
	}
	res.Duration = time.Since(started)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// scanFile loads one file, scans its tree, and stamps the display path onto
// each finding. Excerpts arrive already masked from the scan layer.
func scanFile(path, displayPath string, pol *policy.Policy) ([]types.Finding, error) {
	root, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	findings, err := scan.Scan(root, pol)
	if err != nil {
		return nil, err
	}
	for i := range findings {
		findings[i].File = displayPath
	}
	return findings, nil
}
