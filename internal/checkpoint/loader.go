package checkpoint

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safewalk/internal/models"
	"gopkg.in/yaml.v3"
)

type fileFormat struct {
	Checkpoints []models.Checkpoint `yaml:"checkpoints" validate:"required,min=1,dive"`
}

// LoadFile читает набор точек из YAML файла вида
//
//	checkpoints:
//	  - name: Store
//	    latitude: 37.7749
//	    longitude: -122.4194
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoints file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает и валидирует YAML с контрольными точками
func Parse(data []byte) (*Registry, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse checkpoints: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("invalid checkpoints: %w", err)
	}
	return NewRegistry(f.Checkpoints), nil
}
