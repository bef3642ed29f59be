package evaluator_test

// Snapshot coverage of spec.md §8's end-to-end scenarios, grounded on the
// teacher's internal/interp/fixture_test.go (source file + expected output
// pair, executed through the embedding surface, compared with go-snaps).
// Unlike the teacher's fixture harness (which type-checks and compares
// formatted program output against .txt files), these scripts have no
// Print/console output to capture — this dialect's observable surface is
// global variables — so each fixture is paired with the variable name(s)
// its scenario names, read back through pkg/script.Engine.GetVariable and
// snapshotted instead of stdout.

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/dws-sandbox/basicscript/pkg/script"
)

// fixture names a script under testdata/fixtures and the global variable(s)
// whose final value the scenario cares about.
type fixture struct {
	file string
	vars []string
}

var fixtures = []fixture{
	{"arithmetic.bas", []string{"x"}},
	{"array_bounds.bas", []string{"y"}},
	{"error_resume_next.bas", []string{"z", "n"}},
	{"for_step.bas", []string{"s"}},
}

func TestFixtures(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.file, func(t *testing.T) {
			source, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", fx.file))
			if err != nil {
				t.Fatalf("reading fixture: %v", err)
			}

			engine, err := script.New()
			if err != nil {
				t.Fatalf("creating engine: %v", err)
			}
			if err := engine.AddCode(string(source)); err != nil {
				t.Fatalf("running %s: %v", fx.file, err)
			}

			for _, name := range fx.vars {
				v, err := engine.GetVariable(name)
				if err != nil {
					t.Fatalf("reading %s after %s: %v", name, fx.file, err)
				}
				snaps.MatchSnapshot(t, name, v)
			}
		})
	}
}

// TestFunctionCallFixture exercises spec.md §8 scenario 3 (`run F(10, 32)`
// via the embedding surface's named-procedure call), which needs Run rather
// than a variable read.
func TestFunctionCallFixture(t *testing.T) {
	source, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", "function_call.bas"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	engine, err := script.New()
	if err != nil {
		t.Fatalf("creating engine: %v", err)
	}
	if err := engine.AddCode(string(source)); err != nil {
		t.Fatalf("loading function_call.bas: %v", err)
	}

	result, err := engine.Run("F", int64(10), int64(32))
	if err != nil {
		t.Fatalf("calling F: %v", err)
	}
	snaps.MatchSnapshot(t, "F(10, 32)", result)
}

// TestClassPropertyFixture exercises spec.md §8 scenario 5 (class
// instantiation, field assignment, method call) end to end.
func TestClassPropertyFixture(t *testing.T) {
	source, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", "class_property.bas"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	engine, err := script.New()
	if err != nil {
		t.Fatalf("creating engine: %v", err)
	}
	if err := engine.AddCode(string(source)); err != nil {
		t.Fatalf("running class_property.bas: %v", err)
	}

	r, err := engine.GetVariable("r")
	if err != nil {
		t.Fatalf("reading r: %v", err)
	}
	snaps.MatchSnapshot(t, "r", r)
}
