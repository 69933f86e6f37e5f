package fx

import (
	"github.com/tonefold/ampcab/pkg/audiofile"
	"github.com/tonefold/ampcab/pkg/dsp/convolve"
	"github.com/tonefold/ampcab/pkg/framework/catalog"
)

// requestLoad starts a background load of the model at path. At most one
// load is in flight per instance; a request made while one is running is
// dropped, not queued.
func (inst *Instance) requestLoad(path string) {
	if inst.closed.Load() {
		return
	}
	if !inst.loading.TrySet() {
		inst.log.Debug("model load already in flight, dropping %s", path)
		return
	}

	inst.modelName = catalog.DisplayName(path)
	inst.log.Info("loading model %s", path)

	// The flag guarantees at most one request is outstanding, so this
	// buffered send never blocks the controller.
	inst.loadReq <- path
}

// loadWorker is the single background loader. One goroutine per instance;
// it owns all blocking I/O and model construction.
func (inst *Instance) loadWorker() {
	defer close(inst.workerDone)

	for path := range inst.loadReq {
		model, err := inst.loadModel(path)
		if err != nil {
			inst.log.Error("model load failed: %v", err)
			model = nil
		} else {
			inst.log.Info("model loaded (sample rate %.0f)", model.SampleRate())
		}

		// Publish strictly before clearing the flag: teardown must never
		// observe loading=false while the result is still unpublished.
		inst.pending.Publish(&loadResult{model: model})
		inst.loading.Clear()
	}
}

// loadCab decodes a cabinet IR and installs it in the convolution engine.
// Runs synchronously on the controller context; on failure the previous IR
// stays active.
func (inst *Instance) loadCab(path string) bool {
	samples, rate, err := audiofile.ReadIR(path, convolve.MaxIRLength)
	if err != nil {
		inst.log.Error("cab load failed: %v", err)
		return false
	}
	if err := inst.cab.LoadIR(samples); err != nil {
		inst.log.Error("cab load failed: %v", err)
		return false
	}

	inst.cabName = catalog.DisplayName(path)
	inst.log.Info("loaded cab %s (%d samples at %d Hz)", inst.cabName, len(samples), rate)
	return true
}
