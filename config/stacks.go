package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultStackName is used by projects that do not name a service stack.
const DefaultStackName = "default"

var stackNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// StackConfig is one tenant-selectable bundle of infrastructure endpoints.
type StackConfig struct {
	Name         string `yaml:"name" json:"name"`
	RedisURL     string `yaml:"redis_url" json:"-"`
	SearchHost   string `yaml:"search_host" json:"search_host"`
	SearchAPIKey string `yaml:"search_api_key" json:"-"`
	IndexPrefix  string `yaml:"index_prefix" json:"index_prefix"`
}

type stacksFile struct {
	Stacks []StackConfig `yaml:"stacks"`
}

// LoadServiceStacks returns the default stack built from env plus every stack
// declared in the YAML file at path. An empty path yields only the default.
func LoadServiceStacks(cfg *Config) (map[string]StackConfig, error) {
	stacks := map[string]StackConfig{
		DefaultStackName: {
			Name:         DefaultStackName,
			RedisURL:     cfg.Redis.URL,
			SearchHost:   cfg.Search.Host,
			SearchAPIKey: cfg.Search.APIKey,
			IndexPrefix:  cfg.Search.IndexPrefix,
		},
	}

	if cfg.Stacks.File == "" {
		return stacks, nil
	}

	content, err := os.ReadFile(cfg.Stacks.File)
	if err != nil {
		return nil, fmt.Errorf("read stacks file: %w", err)
	}

	return parseServiceStacks(content, stacks)
}

func parseServiceStacks(content []byte, stacks map[string]StackConfig) (map[string]StackConfig, error) {
	var file stacksFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse stacks file: %w", err)
	}

	for i, s := range file.Stacks {
		if !stackNamePattern.MatchString(s.Name) {
			return nil, fmt.Errorf("stack %d: invalid name %q", i, s.Name)
		}
		if s.RedisURL == "" || s.SearchHost == "" {
			return nil, fmt.Errorf("stack %s: redis_url and search_host are required", s.Name)
		}
		if s.IndexPrefix == "" {
			s.IndexPrefix = s.Name
		}
		// A file entry named default overrides the env-derived stack.
		stacks[s.Name] = s
	}

	return stacks, nil
}
