package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/calvinalkan/vgen/internal/catalogue"
	"github.com/calvinalkan/vgen/internal/cli"
	"github.com/calvinalkan/vgen/pkg/pairtable"
)

func Test_Bare_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	// Call Run directly without test helper (which adds --cwd)
	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"vgen"}, nil)

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stderr.String(), ""; got != want {
		t.Errorf("stderr=%q, want=%q", got, want)
	}

	if got, want := stdout.String(), pairtable.Generate(catalogue.Default()); got != want {
		t.Errorf("stdout does not match the default table\ngot:\n%s", got)
	}
}

func Test_Empty_Args_When_Invoked(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, nil, nil)

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stdout.String(), "sk_validatorTests = {")
}

func Test_Main_Help_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		args []string
	}{
		{name: "long flag", args: []string{"--help"}},
		{name: "short flag", args: []string{"-h"}},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stdout, stderr, exitCode := c.Run(tt.args...)

			if got, want := exitCode, 0; got != want {
				t.Errorf("exitCode=%d, want=%d", got, want)
			}

			if got, want := stderr, ""; got != want {
				t.Errorf("stderr=%q, want=%q", got, want)
			}

			cli.AssertContains(t, stdout, "vgen - validator identity table generator")
			cli.AssertContains(t, stdout, "--cwd")
			cli.AssertContains(t, stdout, "--format")
			cli.AssertContains(t, stdout, "--output")
			cli.AssertContains(t, stdout, "generate")
			cli.AssertContains(t, stdout, "catalogue")
			cli.AssertContains(t, stdout, "print-config")
		})
	}
}

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("--invalid-flag")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")
	cli.AssertContains(t, stderr, "Global flags:")
}

func Test_Unknown_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("frobnicate")

	cli.AssertContains(t, stderr, "unknown command: frobnicate")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Unknown_Format_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--format=rust")

	cli.AssertContains(t, stderr, "unknown format")
}

func Test_Empty_Table_Name_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--table-name=")

	cli.AssertContains(t, stderr, "table-name cannot be empty")
}

func Test_Invalid_Config_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".vgen.json", `{"format": `)

	stderr := c.MustFail()

	cli.AssertContains(t, stderr, "invalid config file")
}

func Test_Missing_Explicit_Config_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("-c", "missing.json")

	cli.AssertContains(t, stderr, "config file not found: missing.json")
}

func Test_Verbose_Logs_To_Stderr_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("-v")

	if got, want := exitCode, 0; got != want {
		t.Fatalf("exitCode=%d, want=%d\nstderr: %s", got, want, stderr)
	}

	// Logging must not leak into the generated table.
	if got, want := stdout, pairtable.Generate(catalogue.Default()); got != want {
		t.Errorf("stdout changed under --verbose")
	}

	cli.AssertContains(t, stderr, "generating table")
	cli.AssertContains(t, stderr, `"entries": 2209`)
	cli.AssertNotContains(t, stderr, "sk_validatorTests")
}

func Test_Quiet_By_Default_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	_, stderr, _ := c.Run()

	if strings.TrimSpace(stderr) != "" {
		t.Errorf("stderr=%q, want empty", stderr)
	}
}
