// Package optimization provides shared data structures for optimization results.
package optimization

// Summary captures the result of a single capacity search.
type Summary struct {
	Capacity   int      `json:"capacity"`
	Found      bool     `json:"found"`
	Probes     int      `json:"probes"`
	SearchLow  int      `json:"searchLow"`
	SearchHigh int      `json:"searchHigh"`
	Notes      []string `json:"notes,omitempty"`
}
