// Package store loads the optional column-alias override file. Sites whose
// exports use header names outside the built-in lists can extend or replace
// the alias priority lists without a rebuild.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"storeops/issuance-dash/internal/fields"
	"storeops/issuance-dash/internal/logging"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// AliasStore manages loading of column alias overrides.
type AliasStore struct {
	AliasesFile string
}

// NewAliasStore creates a store reading from the given file. An empty
// filename means "search the standard locations for aliases.yaml".
func NewAliasStore(aliasesFile string) *AliasStore {
	return &AliasStore{AliasesFile: aliasesFile}
}

// FindConfigFile looks for a configuration file in standard locations:
// the working directory, ./config/, and ~/.config/issuance-dash/.
func (s *AliasStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "issuance-dash", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadAliases loads alias overrides from the YAML file. A missing file is
// not an error: the built-in defaults apply. Lists left empty in the file
// keep their defaults too.
func (s *AliasStore) LoadAliases() (fields.Aliases, error) {
	filename := s.AliasesFile
	if filename == "" {
		filename = "aliases.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, filename).Debug("No alias override file found, using defaults")
			return fields.DefaultAliases(), nil
		}
		return fields.Aliases{}, fmt.Errorf("error resolving aliases file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fields.Aliases{}, fmt.Errorf("error reading aliases file %s: %w", filePath, err)
	}

	var aliases fields.Aliases
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return fields.Aliases{}, fmt.Errorf("error parsing aliases file %s: %w", filePath, err)
	}

	log.WithField(logging.FieldFile, filePath).Info("Loaded column alias overrides")
	return aliases, nil
}

// SaveAliases writes the alias lists to the YAML file, creating parent
// directories as needed. Used to bootstrap a site-specific override file.
func (s *AliasStore) SaveAliases(aliases fields.Aliases) error {
	filename := s.AliasesFile
	if filename == "" {
		filename = "aliases.yaml"
	}

	data, err := yaml.Marshal(aliases)
	if err != nil {
		return fmt.Errorf("error marshaling aliases: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("error writing aliases file %s: %w", filename, err)
	}

	log.WithField(logging.FieldFile, filename).Info("Saved column alias file")
	return nil
}
