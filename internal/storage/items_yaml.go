package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"ticks/internal/core/model"
)

// ErrNoConfiguration indicates the items document is missing or unreadable.
// Callers fall back to an empty catalog; partial results are never returned.
var ErrNoConfiguration = errors.New("no configuration")

type yamlItem struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Action  string `yaml:"action"`
	Timeout int    `yaml:"timeout"`
}

type yamlItemsFile struct {
	Items []yamlItem `yaml:"items"`
}

// LoadItems reads the item templates stored at path.
func LoadItems(path string) ([]model.Item, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w: %w", ErrNoConfiguration, err)
	}
	items, err := ParseItems(rawData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ParseItems decodes an items document. A document without an items list
// yields no items; list entries that are not mappings are skipped and
// missing keys take their zero value.
func ParseItems(rawData []byte) ([]model.Item, error) {
	var root struct {
		Items yaml.Node `yaml:"items"`
	}
	if err := yaml.Unmarshal(rawData, &root); err != nil {
		return nil, fmt.Errorf("parse items yaml: %w: %w", ErrNoConfiguration, err)
	}
	if root.Items.Kind != yaml.SequenceNode {
		return []model.Item{}, nil
	}

	items := make([]model.Item, 0, len(root.Items.Content))
	for _, node := range root.Items.Content {
		if node.Kind != yaml.MappingNode {
			continue
		}
		var entry yamlItem
		if err := node.Decode(&entry); err != nil {
			return nil, fmt.Errorf("decode item at line %d: %w: %w", node.Line, ErrNoConfiguration, err)
		}
		items = append(items, model.NewItem(
			entry.Name,
			entry.Type,
			entry.Action,
			time.Duration(entry.Timeout)*time.Second,
		))
	}
	return items, nil
}

// SaveItems writes item templates to path, creating parent directories.
func SaveItems(path string, items []model.Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create items directory: %w", err)
	}

	serialized, err := MarshalItems(items)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write items file: %w", err)
	}
	return nil
}

// MarshalItems encodes items as an items document.
func MarshalItems(items []model.Item) ([]byte, error) {
	fileData := yamlItemsFile{Items: make([]yamlItem, 0, len(items))}
	for _, item := range items {
		fileData.Items = append(fileData.Items, yamlItem{
			Name:    item.Name(),
			Type:    item.Type(),
			Action:  item.Action(),
			Timeout: item.TimeoutSeconds(),
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal items yaml: %w", err)
	}
	return serialized, nil
}
