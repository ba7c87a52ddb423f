// Package driver orchestrates one generation run: load the topology model,
// validate it, check symbol naming, resolve aliases, and emit. Each run owns
// its model, bag, and output buffer; nothing is shared or carried across
// invocations, so independent runs may execute in parallel freely.
package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"muxgen/internal/alias"
	"muxgen/internal/diag"
	"muxgen/internal/emit"
	"muxgen/internal/namer"
	"muxgen/internal/topology"
)

const defaultMaxDiagnostics = 100

// Options configures a generation run.
type Options struct {
	MaxDiagnostics int
	Emit           emit.Options
}

// Result holds the outcome of one run. Output is nil whenever Bag carries
// errors: a failing run never produces partial output.
type Result struct {
	Path   string
	Model  *topology.Model
	Output []byte
	Bag    *diag.Bag
}

// Generate runs the full pipeline over one topology file. The returned error
// wraps the failing phase's sentinel (topology.ErrMalformed,
// namer.ErrNameCollision, alias.ErrUnresolved) or reports the I/O problem;
// per-finding detail lives in Result.Bag.
func Generate(path string, opts Options) (*Result, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = defaultMaxDiagnostics
	}
	res := &Result{Path: path, Bag: diag.NewBag(maxDiag)}

	model, fileOpts, err := topology.Load(path)
	if err != nil {
		res.Bag.Add(diag.NewError(diag.IODecodeError, "",
			"failed to load topology: "+err.Error()))
		return res, err
	}
	res.Model = model

	emitOpts := opts.Emit
	if fileOpts.IncludeUnknownSentinel {
		emitOpts.IncludeUnknownSentinel = true
	}

	out, err := GenerateModel(model, emitOpts, res.Bag)
	if err != nil {
		return res, err
	}
	res.Output = out
	return res, nil
}

// GenerateModel runs the pure part of the pipeline over an already-built
// model. Phases run in order and the first failing phase aborts the run
// before any text is rendered, so a failure is always all-or-nothing.
func GenerateModel(m *topology.Model, opts emit.Options, bag *diag.Bag) ([]byte, error) {
	if err := topology.Validate(m, bag); err != nil {
		return nil, err
	}
	if err := namer.Check(m, bag); err != nil {
		return nil, err
	}
	entries, err := alias.Resolve(m, bag)
	if err != nil {
		return nil, err
	}
	out, err := emit.New(m, opts).Emit(entries)
	if err != nil {
		bag.Add(diag.NewError(diag.TopEncodingOverflow, "", err.Error()))
		return nil, err
	}
	return out, nil
}

// WriteOutput writes generated text to path atomically: the bytes land in a
// temp file first and replace the destination only on success, so a crashed
// or failed run never leaves a truncated artifact in place.
func WriteOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".muxgen-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}
