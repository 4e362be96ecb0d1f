// pkg/api/result_v1.go
package api

// ResultSchemaV1 identifies ResultV1 documents.
const ResultSchemaV1 = "polymer.result.v1"

// ResultV1 is the stable JSON schema for one growth run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Schema      string         `json:"schema"`
	Input       string         `json:"input"`
	Method      string         `json:"method"` // "naive" | "tally"
	Steps       int            `json:"steps"`
	Length      int            `json:"length"`
	Answer      int            `json:"answer"` // max - min element count
	Frequencies map[string]int `json:"frequencies"`
	Chain       string         `json:"chain,omitempty"`
}
