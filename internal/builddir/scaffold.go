package builddir

import (
	"context"
	"fmt"
	"os"

	"github.com/fsfw/fsfwhelper/internal/target"
	"github.com/fsfw/fsfwhelper/x/cmake"
)

// Scaffolder creates build directories and runs the one-time CMake
// configuration inside them.
type Scaffolder struct {
	Root   string
	Runner cmake.Runner
}

// Scaffold creates dir, which must not exist yet, and configures the
// project at s.Root into it. When configuration fails dir is left behind
// for inspection.
func (s *Scaffolder) Scaffold(ctx context.Context, dir string, req target.Request) error {
	c := cmake.New(s.Runner, s.Root, dir)
	if err := c.RequireVersion(ctx, cmake.MinVersion); err != nil {
		return err
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return fmt.Errorf("create build directory: %w", err)
	}
	Configure(c, req)
	return c.Configure(ctx)
}

// Configure applies the fixed option set for req.Kind to c.
func Configure(c *cmake.CMake, req target.Request) {
	c.Define("FSFW_OSAL", "host")
	if req.Kind == target.Docs {
		c.DefineBool("FSFW_BUILD_DOCS", true)
		return
	}
	gen := req.Generator
	if gen == "" {
		gen = target.DefaultGenerator
	}
	c.Generator(gen)
	c.DefineBool("FSFW_BUILD_TESTS", true)
	if req.Windows {
		c.Define("GCOVR_PATH", target.WindowsGcovr)
	}
}
