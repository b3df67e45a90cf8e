// Package target holds the fixed filesystem and CMake conventions of the
// two build flavours the helpers know about: unit tests and documentation.
package target

import (
	"errors"
	"fmt"
	"path/filepath"
)

// CacheFile marks a directory CMake has already configured.
const CacheFile = "CMakeCache.txt"

const (
	TestsDirName = "cmake-build-tests"
	DocsDirName  = "build-docs"

	// CoverageTarget is both the CMake target that runs the unit tests under
	// gcovr and the directory its HTML report lands in.
	CoverageTarget = "fsfw-tests_coverage"
	TestBinary     = "fsfw-tests"

	DefaultGenerator = "Ninja"
	WindowsGcovr     = "py -m gcovr"
)

var (
	coverageIndex = filepath.Join(CoverageTarget, "index.html")
	docsIndex     = filepath.Join("docs", "sphinx", "index.html")
)

// Kind selects what a build directory is configured for.
type Kind string

const (
	Docs  Kind = "docs"
	Tests Kind = "tests"
)

// Kinds lists the accepted values of the positional type argument.
var Kinds = []string{string(Docs), string(Tests)}

// Parse converts a command-line type argument into a Kind.
func Parse(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Docs, Tests:
		return k, nil
	}
	return "", fmt.Errorf("invalid or unknown type %q, choices: %v", s, Kinds)
}

// DirName is the conventional name of a freshly scaffolded build directory.
func (k Kind) DirName() string {
	if k == Docs {
		return DocsDirName
	}
	return TestsDirName
}

// Artifact is the page opened in the browser, relative to the build directory.
func (k Kind) Artifact() string {
	if k == Docs {
		return docsIndex
	}
	return coverageIndex
}

// BuildArgs are the arguments appended to "cmake --build <dir>".
func (k Kind) BuildArgs() []string {
	if k == Docs {
		return []string{"-j"}
	}
	return []string{"--", CoverageTarget, "-j"}
}

// Request is the set of operations asked for on one command line.
type Request struct {
	Kind      Kind
	Create    bool
	Build     bool
	Open      bool
	Valgrind  bool
	Generator string
	Windows   bool
}

// ErrNoOperation means none of create, build, open or valgrind was asked for.
var ErrNoOperation = errors.New("please select at least one operation to perform")

// Validate rejects requests that would do nothing or ask for something the
// kind does not support.
func (r Request) Validate() error {
	if !r.Create && !r.Build && !r.Open && !r.Valgrind {
		return ErrNoOperation
	}
	if r.Valgrind && r.Kind != Tests {
		return fmt.Errorf("valgrind can only be run on %s", Tests)
	}
	return nil
}
