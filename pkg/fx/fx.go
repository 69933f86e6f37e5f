// Package fx implements the amp/cab effect instance: a neural amp model
// followed by cabinet IR convolution, processed in fixed 128-frame blocks.
//
// Two contexts touch an Instance. The controller context creates and
// destroys it, sets and reads parameters, and triggers asset loads. The
// audio context calls ProcessBlock once per block and must never lock,
// allocate, or wait; the only state crossing between the contexts is the
// pending-model slot and the loading flag, both lock-free.
package fx

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/tonefold/ampcab/pkg/dsp/convolve"
	"github.com/tonefold/ampcab/pkg/framework/catalog"
	"github.com/tonefold/ampcab/pkg/framework/debug"
	"github.com/tonefold/ampcab/pkg/framework/handoff"
	"github.com/tonefold/ampcab/pkg/framework/param"
	"github.com/tonefold/ampcab/pkg/neural"
)

const (
	// SampleRate is the fixed processing rate.
	SampleRate = 44100
	// BlockCapacity is the largest frame count one ProcessBlock accepts;
	// anything beyond it is clamped, not an error.
	BlockCapacity = 128
)

// ModelLoader constructs a model from a capture file. It runs on the
// background worker and may block for seconds.
type ModelLoader func(path string) (neural.Model, error)

// Config carries the optional construction dependencies.
type Config struct {
	// Logger receives diagnostics. Defaults to a stderr logger.
	Logger *debug.Logger
	// Loader replaces the model constructor; tests use this to substitute
	// instrumented models. Defaults to neural.LoadFile.
	Loader ModelLoader
}

// loadResult is what the background worker parks in the pending slot. A nil
// model records a failed load, so teardown can distinguish "nothing ever
// loaded" from "load finished badly".
type loadResult struct {
	model neural.Model
}

// Instance is one audio-processing context rooted at a base directory with
// models/ and cabs/ subdirectories.
type Instance struct {
	baseDir   string
	log       *debug.Logger
	loadModel ModelLoader

	// Active model; owned by the audio context once processing starts.
	model neural.Model

	// Loader-to-audio hand-off.
	pending    handoff.Slot[loadResult]
	loading    handoff.Flag
	loadReq    chan string
	workerDone chan struct{}
	closed     atomic.Bool

	// Controller-context state.
	modelName  string
	modelIndex int
	models     []catalog.Entry
	cabName    string
	cabIndex   int
	cabs       []catalog.Entry

	cab *convolve.Engine

	inputLevel  *param.Parameter
	outputLevel *param.Parameter
	params      *param.Registry

	// Per-block scratch; sized so ProcessBlock never allocates.
	monoIn  [BlockCapacity]float32
	monoOut [BlockCapacity]float32

	hierarchy string
}

// New creates an instance rooted at baseDir, scans both asset catalogs, and
// kicks off a background load of the first model and cab found. cfg may be
// nil.
func New(baseDir string, cfg *Config) (*Instance, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("fx: empty base directory")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	neural.SetDefaultMaxBufferSize(BlockCapacity)

	inst := &Instance{
		baseDir:    baseDir,
		log:        cfg.Logger,
		loadModel:  cfg.Loader,
		modelIndex: -1,
		cabIndex:   -1,
		cab:        convolve.New(BlockCapacity),
		loadReq:    make(chan string, 1),
		workerDone: make(chan struct{}),
	}
	if inst.log == nil {
		inst.log = debug.NewStderr("ampcab")
	}
	if inst.loadModel == nil {
		inst.loadModel = neural.LoadFile
	}

	inst.inputLevel = param.New("input_level", 0, 1, 0.5)
	inst.outputLevel = param.New("output_level", 0, 1, 0.5)
	inst.params = param.NewRegistry()
	inst.params.Add(inst.inputLevel, inst.outputLevel)

	inst.hierarchy = buildHierarchy()

	go inst.loadWorker()

	inst.models = catalog.Scan(inst.modelsDir(), catalog.ModelExts)
	if len(inst.models) == 0 {
		inst.log.Warn("no models found in %s", inst.modelsDir())
	} else {
		inst.log.Info("found %d model files", len(inst.models))
		inst.modelIndex = 0
		inst.requestLoad(inst.models[0].Path)
	}

	inst.cabs = catalog.Scan(inst.cabsDir(), catalog.CabExts)
	if len(inst.cabs) == 0 {
		inst.log.Warn("no cabs found in %s", inst.cabsDir())
	} else {
		inst.log.Info("found %d cab files", len(inst.cabs))
		inst.cabIndex = 0
		inst.loadCab(inst.cabs[0].Path)
	}

	return inst, nil
}

// Close tears the instance down. It waits for any in-flight model load to
// finish, then releases the pending and active models. The caller must have
// stopped invoking ProcessBlock.
func (inst *Instance) Close() {
	if !inst.closed.CompareAndSwap(false, true) {
		return
	}

	// The worker drains any queued request and exits; waiting on its done
	// channel is the completion signal that replaces teardown polling.
	close(inst.loadReq)
	<-inst.workerDone

	if res := inst.pending.Take(); res != nil && res.model != nil {
		res.model.Close()
	}
	if inst.model != nil {
		inst.model.Close()
		inst.model = nil
	}

	inst.log.Info("instance destroyed")
}

func (inst *Instance) modelsDir() string {
	return filepath.Join(inst.baseDir, "models")
}

func (inst *Instance) cabsDir() string {
	return filepath.Join(inst.baseDir, "cabs")
}
