// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"polymer/pkg/api"
)

// ToAPIResult converts a Result to the stable wire schema (v1).
func ToAPIResult(r Result) api.ResultV1 {
	freq := make(map[string]int, len(r.Frequencies))
	for c, n := range r.Frequencies {
		freq[string(c)] = n
	}
	return api.ResultV1{
		Schema:      api.ResultSchemaV1,
		Input:       r.Input,
		Method:      r.Method,
		Steps:       r.Steps,
		Length:      r.Length,
		Answer:      r.Answer,
		Frequencies: freq,
		Chain:       r.Chain,
	}
}

// WriteJSON writes r as one indented JSON document.
func WriteJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIResult(r))
}
