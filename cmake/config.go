package cmake

import (
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultOutput = "CMakeLists.txt"

// Config holds the optional run settings read from a yaml file.
type Config struct {
	path string `yaml:"-"`

	Output          string `yaml:"output"`
	MinimumVersion  string `yaml:"cmake-minimum"`
	DefaultStandard int    `yaml:"default-cxx-standard"`
}

func DefaultConfig() *Config {
	return &Config{
		Output:          DefaultOutput,
		MinimumVersion:  DefaultMinimumVersion,
		DefaultStandard: DefaultStandard,
	}
}

// OpenConfig loads a yaml config. Fields left out of the file keep
// their defaults.
func OpenConfig(fn string) (*Config, error) {
	buf, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	c := &Config{path: fn}
	err = yaml.Unmarshal(buf, c)
	if err != nil {
		return nil, err
	}

	d := DefaultConfig()
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.MinimumVersion == "" {
		c.MinimumVersion = d.MinimumVersion
	}
	if c.DefaultStandard == 0 {
		c.DefaultStandard = d.DefaultStandard
	}
	return c, nil
}

func (c *Config) Path() string {
	return c.path
}

// Apply copies the writer settings of c into w.
func (c *Config) Apply(w *Writer) {
	w.MinimumVersion = c.MinimumVersion
	w.DefaultStandard = c.DefaultStandard
}
