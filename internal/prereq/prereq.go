// Package prereq verifies that the third-party prerequisites of the
// install sequence are available before any other work happens. The
// managed toolkit runs on Python, so configuration is pointless without a
// recent enough interpreter carrying setuptools.
package prereq

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// MinInterpreter is the minimum accepted Python version.
const MinInterpreter = "3.8"

// Kind classifies the outcome of the startup check.
type Kind int

const (
	OK Kind = iota
	InterpreterMissing
	InterpreterTooOld
	PackagingMissing
)

// Result is the outcome of the startup check. Callers decide exit
// behavior from Kind instead of dispatching on error types.
type Result struct {
	Kind   Kind
	Detail string
}

// Ok reports whether all prerequisites are satisfied.
func (r Result) Ok() bool {
	return r.Kind == OK
}

// Check probes for a python3 interpreter of at least MinInterpreter with
// setuptools importable.
func Check() Result {
	python, err := exec.LookPath("python3")
	if err != nil {
		return Result{
			Kind:   InterpreterMissing,
			Detail: "no python3 interpreter found on PATH",
		}
	}

	out, err := exec.Command(python, "-c", "import platform; print(platform.python_version())").Output()
	if err != nil {
		return Result{
			Kind:   InterpreterMissing,
			Detail: fmt.Sprintf("%s failed to report its version: %v", python, err),
		}
	}
	got := strings.TrimSpace(string(out))
	if !atLeast(got, MinInterpreter) {
		return Result{
			Kind:   InterpreterTooOld,
			Detail: fmt.Sprintf("python %s found, but %s or later is required", got, MinInterpreter),
		}
	}

	if err := exec.Command(python, "-c", "import setuptools").Run(); err != nil {
		return Result{
			Kind:   PackagingMissing,
			Detail: fmt.Sprintf("python %s lacks setuptools", got),
		}
	}

	return Result{Kind: OK}
}

// atLeast compares two dotted version strings numerically, component by
// component. Missing components count as zero; non-numeric components
// compare as zero.
func atLeast(got, want string) bool {
	g := strings.Split(got, ".")
	w := strings.Split(want, ".")
	n := len(g)
	if len(w) > n {
		n = len(w)
	}
	for i := 0; i < n; i++ {
		gi, wi := 0, 0
		if i < len(g) {
			gi, _ = strconv.Atoi(g[i])
		}
		if i < len(w) {
			wi, _ = strconv.Atoi(w[i])
		}
		if gi != wi {
			return gi > wi
		}
	}
	return true
}
