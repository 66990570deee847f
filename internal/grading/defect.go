package grading

import (
	"encoding/json"
	"strings"
)

// Defect is a detected surface defect. The vision collaborator sends
// defects either as plain strings ("bruise") or as tagged objects
// ({"type": "bruise"}); both decode to the same value.
type Defect struct {
	Type string `json:"type"`
}

func (d *Defect) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Type = strings.ToLower(strings.TrimSpace(s))
		return nil
	}

	var tagged struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	d.Type = strings.ToLower(strings.TrimSpace(tagged.Type))
	return nil
}

func (d Defect) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Type)
}

// DefectTypes flattens a defect list to its lowercase type tags.
func DefectTypes(defects []Defect) []string {
	types := make([]string, 0, len(defects))
	for _, d := range defects {
		types = append(types, d.Type)
	}
	return types
}
