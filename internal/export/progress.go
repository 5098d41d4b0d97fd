package export

import (
	"encoding/json"
	"os"
)

// Progress maps ticker → last exported trade date ("2006-01-02").
type Progress map[string]string

// LoadProgress reads the progress file. A missing or unreadable file yields an
// empty map, so a fresh run starts from scratch.
func LoadProgress(path string) Progress {
	data, err := os.ReadFile(path)
	if err != nil {
		return make(Progress)
	}
	var m Progress
	if err := json.Unmarshal(data, &m); err != nil {
		return make(Progress)
	}
	return m
}

// Save persists the progress map.
func (p Progress) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
