package fx

import "encoding/json"

// The ui_hierarchy parameter describes a two-level browser for an external
// UI: root controls plus one sub-level per asset list, each bound to its
// list/select parameter pair.

type uiParamRef struct {
	Key   string `json:"key,omitempty"`
	Level string `json:"level,omitempty"`
	Label string `json:"label"`
}

type uiLevel struct {
	Label       string       `json:"label"`
	ItemsParam  string       `json:"items_param,omitempty"`
	SelectParam string       `json:"select_param,omitempty"`
	Children    []string     `json:"children"`
	Knobs       []string     `json:"knobs"`
	Params      []uiParamRef `json:"params"`
}

type uiHierarchy struct {
	Modes  []string           `json:"modes"`
	Levels map[string]uiLevel `json:"levels"`
}

func buildHierarchy() string {
	h := uiHierarchy{
		Levels: map[string]uiLevel{
			"root": {
				Label: "NAM",
				Knobs: []string{"input_level", "output_level"},
				Params: []uiParamRef{
					{Key: "input_level", Label: "Input"},
					{Key: "output_level", Label: "Output"},
					{Level: "models", Label: "Choose Model"},
					{Level: "cabs", Label: "Choose Cab"},
					{Key: "cab_bypass", Label: "Cab Bypass"},
				},
			},
			"models": {
				Label:       "Model",
				ItemsParam:  "model_list",
				SelectParam: "model_index",
				Knobs:       []string{},
				Params:      []uiParamRef{},
			},
			"cabs": {
				Label:       "Cab",
				ItemsParam:  "cab_list",
				SelectParam: "cab_index",
				Knobs:       []string{},
				Params:      []uiParamRef{},
			},
		},
	}

	raw, err := json.Marshal(h)
	if err != nil {
		// Static data; a marshal failure is a programming error.
		panic(err)
	}
	return string(raw)
}
