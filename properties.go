package kvbench

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Properties holds string configuration values for the harness and for
// store bindings. Keys are lower case property names from config.go.
type Properties map[string]string

func NewProperties() Properties {
	return make(Properties)
}

func (self Properties) Get(key string) string {
	v, _ := self[key]
	return v
}

func (self Properties) GetDefault(key string, defaultValue string) string {
	if v, ok := self[key]; ok {
		return v
	}
	return defaultValue
}

func (self Properties) Add(key string, value string) {
	self[key] = value
}

func (self Properties) Merge(other Properties) {
	for k, v := range other {
		self[k] = v
	}
}

// LoadProperties reads a property file. Files ending in .yaml or .yml are
// parsed as a flat YAML mapping of scalars, anything else as "key=value"
// lines with "#" comments.
func LoadProperties(path string) (Properties, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAMLProperties(path)
	default:
		return loadFlatProperties(path)
	}
}

func loadFlatProperties(path string) (Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	props := NewProperties()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s:%d: expect key=value, got %q", path, lineno, line)
		}
		props.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return props, nil
}

func loadYAMLProperties(path string) (Properties, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	props := NewProperties()
	for k, v := range raw {
		props.Add(k, fmt.Sprintf("%v", v))
	}
	return props, nil
}

func OutputProperties(p Properties) {
	Output("***************** properties *****************")
	if p != nil {
		for k, v := range p {
			Output("\"%s\"=\"%s\"", k, v)
		}
	}
	Output("**********************************************")
}
