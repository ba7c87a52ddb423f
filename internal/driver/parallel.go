package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"muxgen/internal/diag"
)

// TopologySuffix is the filename suffix a topology file must carry.
const TopologySuffix = ".mux.toml"

// listTopologyFiles returns a sorted list of all topology files under dir.
// Sorted so that directory iteration order never leaks into result order.
func listTopologyFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, TopologySuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// GenerateDir runs the pipeline over every topology file under dir, up to
// jobs files in parallel (GOMAXPROCS when jobs <= 0). Each file owns its own
// model, bag, and buffer, so no coordination beyond the errgroup is needed.
// Per-file validation failures are reported through the file's Bag, not as a
// group error; the group fails only on cancellation.
func GenerateDir(ctx context.Context, dir string, opts Options, jobs int) ([]*Result, error) {
	files, err := listTopologyFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := Generate(path, opts)
			if err != nil && !res.Bag.HasErrors() {
				// Every pipeline failure must be visible in the bag.
				res.Bag.Add(diag.NewError(diag.UnknownCode, "", err.Error()))
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
