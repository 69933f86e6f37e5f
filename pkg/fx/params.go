package fx

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tonefold/ampcab/pkg/framework/catalog"
)

// ErrUnknownParam is returned by Param for keys this instance does not
// serve.
var ErrUnknownParam = errors.New("fx: unknown parameter")

// SetParam applies a controller parameter change. Unknown keys and
// unparseable values are no-ops beyond a diagnostic, matching the host
// protocol: setting never fails.
func (inst *Instance) SetParam(key, value string) {
	if p := inst.params.Get(key); p != nil {
		if err := p.SetString(value); err != nil {
			inst.log.Debug("set_param: %v", err)
		}
		return
	}

	switch key {
	case "model_index":
		idx, err := strconv.Atoi(value)
		if err != nil || idx < 0 || idx >= len(inst.models) {
			inst.log.Debug("set_param: bad model_index %q", value)
			return
		}
		if idx == inst.modelIndex {
			return
		}
		inst.modelIndex = idx
		inst.requestLoad(inst.models[idx].Path)
	case "model":
		inst.requestLoad(value)
	case "cab_index":
		idx, err := strconv.Atoi(value)
		if err != nil || idx < 0 || idx >= len(inst.cabs) {
			inst.log.Debug("set_param: bad cab_index %q", value)
			return
		}
		if idx == inst.cabIndex {
			return
		}
		inst.cabIndex = idx
		inst.loadCab(inst.cabs[idx].Path)
	case "cab_bypass":
		inst.cab.SetBypass(value == "1")
	default:
		inst.log.Debug("set_param: unknown key %q", key)
	}
}

// Param reads a controller parameter. The list keys re-scan their directory
// on every call; the count and index keys do not, so the three can disagree
// after the directory changes on disk. That mirrors the host protocol this
// core serves and is deliberate.
func (inst *Instance) Param(key string) (string, error) {
	if p := inst.params.Get(key); p != nil {
		return p.String(), nil
	}

	switch key {
	case "model_name":
		if inst.modelName == "" {
			return "(none)", nil
		}
		return inst.modelName, nil
	case "model_count":
		return strconv.Itoa(len(inst.models)), nil
	case "model_index":
		return strconv.Itoa(inst.modelIndex), nil
	case "model_list":
		inst.models = catalog.Scan(inst.modelsDir(), catalog.ModelExts)
		return marshalNames(inst.models)
	case "loading":
		if inst.loading.IsSet() {
			return "1", nil
		}
		return "0", nil
	case "cab_name":
		if inst.cabName == "" {
			return "(none)", nil
		}
		return inst.cabName, nil
	case "cab_count":
		return strconv.Itoa(len(inst.cabs)), nil
	case "cab_index":
		return strconv.Itoa(inst.cabIndex), nil
	case "cab_list":
		inst.cabs = catalog.Scan(inst.cabsDir(), catalog.CabExts)
		return marshalNames(inst.cabs)
	case "cab_bypass":
		if inst.cab.Bypassed() {
			return "1", nil
		}
		return "0", nil
	case "ui_hierarchy":
		return inst.hierarchy, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
}

func marshalNames(entries []catalog.Entry) (string, error) {
	names := catalog.Names(entries)
	if names == nil {
		names = []string{}
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("fx: marshal list: %w", err)
	}
	return string(raw), nil
}
