// config.go — run limits and their YAML file form.
//
// Limits are the sole defense against programs whose nature is to requote
// and re-execute themselves forever: a step budget bounds time, per-stack
// caps bound memory. Everything defaults to unbounded.
package pustgp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Stack kind names recognized in Config.Stacks and by Config.Limit.
const (
	KindBoolean     = "boolean"
	KindInteger     = "integer"
	KindFloat       = "float"
	KindName        = "name"
	KindCode        = "code"
	KindExec        = "exec"
	KindBoolVector  = "boolvector"
	KindIntVector   = "intvector"
	KindFloatVector = "floatvector"
)

// Config carries the recognized run options. Zero values mean unbounded.
type Config struct {
	// MaxSteps bounds the number of interpreter steps per run.
	MaxSteps int `yaml:"max_steps"`
	// MaxStackSize is the default capacity applied to every stack kind.
	// Pushes beyond a cap are silently dropped (data stacks); an exec stack
	// beyond its cap halts the run with HaltStepLimit.
	MaxStackSize int `yaml:"max_stack_size"`
	// Stacks overrides the default cap per stack kind, keyed by the Kind*
	// constants above.
	Stacks map[string]int `yaml:"stacks"`
	// Seed fixes the per-state random source used by the *.RAND
	// instructions. 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the unbounded configuration.
func DefaultConfig() Config { return Config{} }

// Limit resolves the configured capacity for a stack kind (0 = unbounded).
func (c Config) Limit(kind string) int {
	if n, ok := c.Stacks[kind]; ok {
		return n
	}
	return c.MaxStackSize
}

// LoadConfig reads a YAML limits file, e.g.
//
//	max_steps: 1000
//	max_stack_size: 256
//	stacks:
//	  exec: 1024
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	for kind := range c.Stacks {
		switch kind {
		case KindBoolean, KindInteger, KindFloat, KindName, KindCode,
			KindExec, KindBoolVector, KindIntVector, KindFloatVector:
		default:
			return Config{}, fmt.Errorf("parse config %s: unknown stack kind %q", path, kind)
		}
	}
	return c, nil
}
