package suite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/cmplab/ccgrade"
	"gopkg.in/yaml.v3"
)

// Errors returned when loading or running a suite.
var (
	ErrInvalidConfig   = errors.New("invalid suite configuration")
	ErrNoTestCases     = errors.New("no test cases found")
	ErrInvalidTestCase = errors.New("invalid test case name")
)

// Defaults for optional configuration entries.
const (
	DefaultInput   = "input.txt"
	DefaultTimeout = 30 * time.Second
)

// Config describes a suite of test cases.
type Config struct {
	PhaseName string        `yaml:"phase"`
	TestCases string        `yaml:"testcases"`
	Actual    string        `yaml:"actual,omitempty"`
	Command   []string      `yaml:"command,omitempty"`
	Input     string        `yaml:"input,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
	Jobs      int           `yaml:"jobs,omitempty"`
	Diffs     bool          `yaml:"diffs,omitempty"`
	Phase     ccgrade.Phase `yaml:"-"`
	dir       string        // directory of the configuration file
}

// Load reads a suite configuration from a YAML file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open suite: %w", err)
	}
	defer f.Close()
	cfg := &Config{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	if err := cfg.Init(abs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Init validates a configuration, resolves relative paths against dir and
// fills in defaults. Load calls Init; clients building a Config in code have
// to call it themselves.
func (cfg *Config) Init(dir string) error {
	cfg.dir = dir
	phase, err := ccgrade.ParsePhase(cfg.PhaseName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Phase = phase
	if cfg.TestCases == "" {
		return fmt.Errorf("%w: missing test case directory", ErrInvalidConfig)
	}
	if len(cfg.Command) == 0 && cfg.Actual == "" {
		return fmt.Errorf("%w: need either a command or a directory of actual outputs", ErrInvalidConfig)
	}
	cfg.TestCases = cfg.resolve(cfg.TestCases)
	if cfg.Actual != "" {
		cfg.Actual = cfg.resolve(cfg.Actual)
	}
	if cfg.Input == "" {
		cfg.Input = DefaultInput
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = runtime.GOMAXPROCS(0)
	}
	tracer().Debugf("suite: phase=%s, testcases=%s, jobs=%d", cfg.Phase, cfg.TestCases, cfg.Jobs)
	return nil
}

func (cfg *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.dir, path)
}

// commandFor expands ${suite} and ${workdir} in the command arguments.
// Other variables are taken from the environment.
func (cfg *Config) commandFor(workdir string) []string {
	args := make([]string, len(cfg.Command))
	for i, arg := range cfg.Command {
		args[i] = os.Expand(arg, func(name string) string {
			switch name {
			case "suite":
				return cfg.dir
			case "workdir":
				return workdir
			}
			return os.Getenv(name)
		})
	}
	return args
}

// Discover lists the test cases of a suite, i.e. the sub-directories of the
// test case directory, sorted by name.
func Discover(cfg *Config) ([]string, error) {
	entries, err := os.ReadDir(cfg.TestCases)
	if err != nil {
		return nil, fmt.Errorf("cannot list test cases: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTestCases, cfg.TestCases)
	}
	sort.Strings(names)
	return names, nil
}
