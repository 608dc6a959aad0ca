package report

import (
	"encoding/json"
	"os"
)

func WriteJSONToFile(r *Results, path string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil { return err }
	return os.WriteFile(path, b, 0o644)
}

// MergeJSONFiles folds several reports into the first one.
func MergeJSONFiles(paths []string) (*Results, error) {
	var out *Results
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil { return nil, err }
		var r Results
		if err := json.Unmarshal(b, &r); err != nil { return nil, err }
		if out == nil { out = &r; continue }
		out.Merge(&r)
	}
	if out == nil { out = New("report") }
	return out, nil
}
