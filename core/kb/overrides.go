package kb

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"pack-calc/internal/errors"
)

// overrideFile is the YAML shape of an operator override file
type overrideFile struct {
	Overrides map[string]Mapping `yaml:"overrides"`
}

// LoadOverridesFile reads operator overrides from a YAML file.
// A missing path returns an empty snapshot, not an error.
func LoadOverridesFile(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Overrides{}, nil
		}
		return nil, errors.Wrap(errors.TypeConfig, "reading override file", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "parsing override file", err)
	}

	if file.Overrides == nil {
		return Overrides{}, nil
	}
	return file.Overrides, nil
}

func sortedOverrideKeys(o Overrides) []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
