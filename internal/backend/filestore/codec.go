package filestore

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"todo/internal/service"
)

// Codec converts the task list to and from file content.
type Codec interface {
	Name() string
	Encode(tasks []service.Task) ([]byte, error)
	Decode(data []byte) ([]service.Task, error)
}

// CodecFor picks a codec from the file extension: .yaml and .yml select
// YAML, anything else JSON.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML{}
	default:
		return JSON{}
	}
}

// JSON stores the list as an indented JSON array.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Encode(tasks []service.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []service.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (JSON) Decode(data []byte) ([]service.Task, error) {
	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// YAML stores the list as a YAML sequence.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Encode(tasks []service.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []service.Task{}
	}
	return yaml.Marshal(tasks)
}

func (YAML) Decode(data []byte) ([]service.Task, error) {
	var tasks []service.Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// checkTasks rejects decoded records that Add could never have produced.
func checkTasks(tasks []service.Task) error {
	for i, t := range tasks {
		if strings.TrimSpace(t.Description) == "" {
			return fmt.Errorf("task %d has no description", i+1)
		}
	}
	return nil
}
