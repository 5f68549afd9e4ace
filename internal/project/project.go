package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/CubePack/internal/model"
)

// writeJSON marshals v as indented JSON and writes it to path, creating
// parent directories as needed. Projects and the app config share this
// one write path.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveProject writes a project to the given path as indented JSON.
func SaveProject(path string, p model.Project) error {
	return writeJSON(path, p)
}

// LoadProject reads a project from the given path.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("cannot open project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("cannot parse project file: %w", err)
	}
	if p.Pieces == nil {
		p.Pieces = []model.Piece{}
	}
	return p, nil
}
