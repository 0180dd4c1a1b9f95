package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sghaida/frob/examples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every test changes into an empty directory so no stray .frob.yaml is read;
// t.Chdir rules out t.Parallel.

//
// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// runCLI runs the command line in a fresh temp dir and returns the exit code
// plus captured stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

//
// -----------------------------------------------------------------------------
// Examples
// -----------------------------------------------------------------------------

func TestRun_NoArgsRunsEverything(t *testing.T) {
	code, stdout, stderr := runCLI(t)

	require.Equal(t, exitSuccess, code, stderr)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "static        7 checks  ok\n")
	assert.Contains(t, stdout, "dynamic       5 checks  ok\n")
	assert.Contains(t, stdout, "collection    8 checks  ok\n")
}

func TestRun_SelectedExamplesAsJSON(t *testing.T) {
	code, stdout, stderr := runCLI(t, "run", "collection", "static", "-o", "json")
	require.Equal(t, exitSuccess, code, stderr)

	var got examples.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))

	want := examples.Report{Results: []examples.Result{
		{Example: "collection", Checks: 8, Passed: true},
		{Example: "static", Checks: 7, Passed: true},
	}}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(examples.Report{}, "RunID")); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_UnknownExample(t *testing.T) {
	code, stdout, stderr := runCLI(t, "run", "nope")

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `invalid argument "nope"`)
}

func TestRun_ExamplesFromEnv(t *testing.T) {
	t.Setenv("FROB_EXAMPLES", "dynamic")

	code, stdout, stderr := runCLI(t, "run")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, stdout, "dynamic")
	assert.NotContains(t, stdout, "static")
}

func TestRun_UnknownExampleFromConfig(t *testing.T) {
	t.Setenv("FROB_EXAMPLES", "static,nope")

	code, _, stderr := runCLI(t)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, `examples: unknown example "nope"`)
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	code, _, stderr := runCLI(t, "run", "dynamic", "--verbose")
	require.Equal(t, exitSuccess, code)

	assert.Contains(t, stderr, `"msg":"example passed"`)
	assert.Contains(t, stderr, `"example":"dynamic"`)
	assert.Contains(t, stderr, `"msg":"check passed"`)
}

//
// -----------------------------------------------------------------------------
// Configuration errors
// -----------------------------------------------------------------------------

func TestRun_ConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing config file", []string{"--config", filepath.Join(os.TempDir(), "frob-missing.yaml")}, "config: read"},
		{"bad output flag", []string{"-o", "xml"}, `config: invalid output "xml"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tc.args...)
			assert.Equal(t, exitConfigError, code)
			assert.Contains(t, stderr, tc.want)
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "frob.yaml")
	require.NoError(t, os.WriteFile(p, []byte("output: yaml\nexamples: [static]\n"), 0o644))

	code, stdout, stderr := runCLI(t, "--config", p)
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, stdout, "run_id: ")
	assert.Contains(t, stdout, "example: static")
	assert.NotContains(t, stdout, "dynamic")
}

//
// -----------------------------------------------------------------------------
// Variants
// -----------------------------------------------------------------------------

func TestDescribe(t *testing.T) {
	code, stdout, stderr := runCLI(t, "describe", "foo", "bar", "foo")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Equal(t, "[Foo.frob]\n[Bar.frob]\n[Foo.frob]\n", stdout)
}

func TestDescribe_UnknownVariant(t *testing.T) {
	code, stdout, stderr := runCLI(t, "describe", "foo", "baz")

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "frob: unknown variant \"baz\" (known: bar, foo)\n", stderr)
}

func TestDescribe_RequiresVariant(t *testing.T) {
	code, _, _ := runCLI(t, "describe")
	assert.Equal(t, exitFailure, code)
}

func TestJoin(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"refs", []string{"join", "foo", "bar", "foo"}, "[Foo.frob];[Bar.frob];[Foo.frob]\n"},
		{"owned", []string{"join", "--owned", "foo", "bar"}, "[Foo.frob];[Bar.frob]\n"},
		{"single", []string{"join", "bar"}, "[Bar.frob]\n"},
		{"empty", []string{"join"}, "\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tc.args...)
			require.Equal(t, exitSuccess, code, stderr)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestList(t *testing.T) {
	code, stdout, stderr := runCLI(t, "list")
	require.Equal(t, exitSuccess, code, stderr)

	assert.Contains(t, stdout, "variants:\n  bar\n  foo\n")
	assert.Contains(t, stdout, "examples:\n  static       ")
	assert.Contains(t, stdout, "  collection   ")
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "frob v0.1.0\n", stdout)
}
