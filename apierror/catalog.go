package apierror

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog file layout:
//
//	name: users
//	errors:
//	  - code: not_found
//	    status: 404
//	    message: user does not exist
//	  - code: validation_failed
//	    status: 422
//	    message: "{field} is invalid: {reason}"
//	    description: a submitted field failed validation
type catalogFile struct {
	Name   string         `yaml:"name"`
	Errors []catalogEntry `yaml:"errors"`
}

type catalogEntry struct {
	Code        string `yaml:"code"`
	Status      int    `yaml:"status"`
	Message     string `yaml:"message"`
	Description string `yaml:"description"`
}

// ParseCatalog builds a taxonomy from a YAML catalog. Catalog-declared
// descriptors carry no details type; occurrences may still attach details
// at raise time. The same definition checks as New apply, so a catalog with
// duplicate codes is rejected with ErrDefinitionConflict.
func ParseCatalog(data []byte) (*Taxonomy, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("apierror: parse catalog: %w", err)
	}

	descs := make([]*Descriptor, 0, len(file.Errors))
	for _, entry := range file.Errors {
		opts := []DescriptorOption{}
		if entry.Description != "" {
			opts = append(opts, WithDescription(entry.Description))
		}
		descs = append(descs, Define(entry.Code, entry.Status, entry.Message, opts...))
	}
	return New(file.Name, descs...)
}

// LoadCatalog reads a YAML catalog from disk. See ParseCatalog.
func LoadCatalog(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("apierror: load catalog: %w", err)
	}
	return ParseCatalog(data)
}
