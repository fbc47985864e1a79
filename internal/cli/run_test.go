package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calvinalkan/agent-board/internal/cli"
)

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("--invalid-flag", "show")

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout)

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")

	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--help")
	cli.AssertContains(t, stderr, "--cwd")
	cli.AssertContains(t, stderr, "--config")
	cli.AssertContains(t, stderr, "--seed")
}

func Test_Usage_Printed_When_No_Command(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun()

	cli.AssertContains(t, stdout, "Usage: kb [global flags] <command> [args]")
	cli.AssertContains(t, stdout, "Commands:")

	for _, name := range []string{"show", "columns", "print-config", "session"} {
		cli.AssertContains(t, stdout, "  "+name)
	}
}

func Test_Usage_Printed_When_Help_Flag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("--help")

	cli.AssertContains(t, stdout, "Global flags:")
	cli.AssertContains(t, stdout, "--verbose")
}

func Test_Unknown_Command_Fails_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("frobnicate")

	cli.AssertContains(t, stderr, "error: unknown command: frobnicate")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Command_Help_Shows_Flags_When_Help_Passed(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("session", "--help")

	cli.AssertContains(t, stdout, "Usage: kb session [flags]")
	cli.AssertContains(t, stdout, "--echo")
	cli.AssertContains(t, stdout, "--no-history")
	cli.AssertContains(t, stdout, "--journal-limit")
	cli.AssertContains(t, stdout, "drop <task|column>")
}

func Test_Command_Flag_Error_Prints_Help_When_Flag_Unknown(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("show", "--bogus")

	cli.AssertContains(t, stderr, "error: unknown flag: --bogus")
	cli.AssertContains(t, stderr, "Usage: kb show")
}

func Test_Columns_Lists_Fixed_Set_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	assert.Equal(t, "message\tMessage\nscheduling\tScheduling\nvisit\tVisit", c.MustRun("columns"))
}
