package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SavePageSize writes list.page_size into the config file at configPath,
// creating the list section if needed. It preserves the existing YAML
// structure and comments.
func SavePageSize(configPath string, size int) error {
	if !ValidPageSize(size) {
		return fmt.Errorf("page size %d isn't one of %v", size, PageSizeOptions)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse as yaml.Node to preserve structure
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}

	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	listNode := findMapValue(docNode, "list")
	if listNode == nil {
		listNode = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		docNode.Content = append(docNode.Content, scalarNode("!!str", "list"), listNode)
	}
	if listNode.Kind != yaml.MappingNode {
		return fmt.Errorf("'list' in config must be a mapping")
	}

	value := strconv.Itoa(size)
	if sizeNode := findMapValue(listNode, "page_size"); sizeNode != nil {
		if sizeNode.Value == value {
			return nil
		}
		sizeNode.Kind = yaml.ScalarNode
		sizeNode.Tag = "!!int"
		sizeNode.Value = value
	} else {
		listNode.Content = append(listNode.Content, scalarNode("!!str", "page_size"), scalarNode("!!int", value))
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WriteDefault writes cfg as YAML to path.
func WriteDefault(path string, cfg *Config) error {
	var buf strings.Builder
	buf.WriteString("# upmon configuration\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
