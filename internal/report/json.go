package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/empiricalrun/flashimpact/internal/types"
)

// Report is the structured artifact for machine consumers, decoupled from
// the console formatting.
type Report struct {
	Commit  string                 `json:"commit"`
	Impacts []types.TestImpact     `json:"impacts"`
	Files   []types.FileChangeStat `json:"files,omitempty"`
}

func WriteJSON(w io.Writer, r Report) error {
	if r.Impacts == nil {
		r.Impacts = []types.TestImpact{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
