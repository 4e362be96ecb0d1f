package writers

import "polymer/internal/output"

const (
	FormatText = "text"
	FormatJSON = "json"
)

func init() {
	RegisterResult(FormatText, output.WriteText)
	RegisterResult(FormatJSON, output.WriteJSON)
}
