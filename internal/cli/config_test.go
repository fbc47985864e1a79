package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/calvinalkan/agent-board/internal/cli"
)

func Test_PrintConfig_Shows_Defaults_Only_When_No_Config_Files(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "effective_cwd="+c.Dir)
	cli.AssertContains(t, stdout, "log_level=warn")
	cli.AssertContains(t, stdout, "color=true")
	cli.AssertContains(t, stdout, "history_file="+filepath.Join(c.Env["HOME"], ".kb_history"))
	cli.AssertContains(t, stdout, "# sources")
	cli.AssertContains(t, stdout, "(defaults only)")
	cli.AssertNotContains(t, stdout, "seed=")
}

func Test_PrintConfig_Shows_Sources_When_Global_And_Project_Exist(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	globalPath := c.WriteFile("xdg/kb/config.json", `{"log_level": "info", "color": false}`)
	projectPath := c.WriteFile(".kb.json", `{
		// project board
		"seed": "board.yaml",
	}`)

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "log_level=info")
	cli.AssertContains(t, stdout, "color=false")
	cli.AssertContains(t, stdout, "seed="+filepath.Join(c.Dir, "board.yaml"))
	cli.AssertContains(t, stdout, "global_config="+globalPath)
	cli.AssertContains(t, stdout, "project_config="+projectPath)
	cli.AssertNotContains(t, stdout, "(defaults only)")
}

func Test_PrintConfig_Applies_Flags_When_Verbose_And_Seed_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".kb.json", `{"seed": "a.yaml"}`)

	stdout := c.MustRun("-v", "--seed", "b.yaml", "print-config")

	cli.AssertContains(t, stdout, "log_level=debug")
	cli.AssertContains(t, stdout, "seed="+filepath.Join(c.Dir, "b.yaml"))
}

func Test_PrintConfig_Uses_Explicit_Config_When_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	altPath := c.WriteFile("alt.json", `{"log_level": "error"}`)

	stdout := c.MustRun("-c", "alt.json", "print-config")

	cli.AssertContains(t, stdout, "log_level=error")
	cli.AssertContains(t, stdout, "project_config="+altPath)
}

func Test_Config_Errors_Fail_When_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   map[string]string
		args    []string
		wantErr string
	}{
		{
			name:    "missing explicit config",
			args:    []string{"--config", "missing.json", "print-config"},
			wantErr: "config file not found",
		},
		{
			name:    "malformed project config",
			files:   map[string]string{".kb.json": `{"seed": `},
			args:    []string{"print-config"},
			wantErr: "invalid config file",
		},
		{
			name:    "bad log level",
			files:   map[string]string{".kb.json": `{"log_level": "chatty"}`},
			args:    []string{"show"},
			wantErr: "invalid log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			for name, content := range tt.files {
				c.WriteFile(name, content)
			}

			stderr := c.MustFail(tt.args...)
			cli.AssertContains(t, stderr, "error:")
			cli.AssertContains(t, stderr, tt.wantErr)
		})
	}
}
