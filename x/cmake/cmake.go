// Package cmake wraps the cmake configure/build workflow.
package cmake

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// MinVersion is the oldest cmake that understands "-S <src> -B <build>".
const MinVersion = "v3.13.0"

// Runner spawns cmake. dir is the working directory of the child process;
// an empty dir inherits the caller's.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

type defineValue struct {
	value    string
	typeName string
}

// CMake drives CMake-based builds.
type CMake struct {
	runner    Runner
	sourceDir string
	buildDir  string
	generator string
	defines   map[string]defineValue
}

// New returns a CMake that configures sourceDir into buildDir.
func New(r Runner, sourceDir, buildDir string) *CMake {
	return &CMake{
		runner:    r,
		sourceDir: sourceDir,
		buildDir:  buildDir,
		defines:   make(map[string]defineValue),
	}
}

// BuildDir returns the build directory.
func (c *CMake) BuildDir() string { return c.buildDir }

// Generator sets the CMake generator (e.g. "Ninja", "Unix Makefiles").
func (c *CMake) Generator(name string) { c.generator = name }

// Define adds a -D<key>:STRING=<value> definition.
func (c *CMake) Define(key, value string) {
	c.defines[key] = defineValue{value: value, typeName: "STRING"}
}

// DefineBool adds a -D<key>:BOOL=ON/OFF definition.
func (c *CMake) DefineBool(key string, value bool) {
	v := "OFF"
	if value {
		v = "ON"
	}
	c.defines[key] = defineValue{value: v, typeName: "BOOL"}
}

// ConfigureArgs returns the arguments Configure passes to cmake.
func (c *CMake) ConfigureArgs(args ...string) []string {
	cmakeArgs := []string{"-S", c.sourceDir, "-B", c.buildDir}
	if c.generator != "" {
		cmakeArgs = append(cmakeArgs, "-G", c.generator)
	}
	cmakeArgs = append(cmakeArgs, c.definesArgs()...)
	return append(cmakeArgs, args...)
}

// Configure runs "cmake -S <source> -B <build>" with all configured options.
// Extra args are appended at the end.
func (c *CMake) Configure(ctx context.Context, args ...string) error {
	return c.runner.Run(ctx, c.buildDir, "cmake", c.ConfigureArgs(args...)...)
}

// Build runs "cmake --build <build>" with optional extra arguments.
func (c *CMake) Build(ctx context.Context, args ...string) error {
	cmakeArgs := append([]string{"--build", c.buildDir}, args...)
	return c.runner.Run(ctx, c.buildDir, "cmake", cmakeArgs...)
}

// Version reports the installed cmake version in semver form ("v3.22.1").
func (c *CMake) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Output(ctx, "", "cmake", "--version")
	if err != nil {
		return "", err
	}
	return parseVersion(out)
}

// RequireVersion fails if the installed cmake is older than min.
func (c *CMake) RequireVersion(ctx context.Context, min string) error {
	v, err := c.Version(ctx)
	if err != nil {
		return err
	}
	if semver.Compare(v, min) < 0 {
		return fmt.Errorf("cmake %s is too old, need at least %s", v, min)
	}
	return nil
}

// parseVersion extracts the version from the first line of "cmake --version",
// which reads "cmake version 3.22.1".
func parseVersion(out []byte) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	if !sc.Scan() {
		return "", fmt.Errorf("empty cmake --version output")
	}
	fields := strings.Fields(sc.Text())
	if len(fields) == 0 {
		return "", fmt.Errorf("unexpected cmake --version output %q", sc.Text())
	}
	v := "v" + fields[len(fields)-1]
	if !semver.IsValid(v) {
		return "", fmt.Errorf("unexpected cmake version %q", fields[len(fields)-1])
	}
	return v, nil
}

func (c *CMake) definesArgs() []string {
	if len(c.defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.defines))
	for k := range c.defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		d := c.defines[k]
		args = append(args, "-D"+k+":"+d.typeName+"="+d.value)
	}
	return args
}
