package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/agent-board/internal/config"
	"github.com/calvinalkan/agent-board/internal/fs"
)

// Run is the main entry point. Returns exit code.
//
// sigCh may be nil. When it delivers a signal the running command's context
// is cancelled; an interactive or scripted session stops reading input.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globals := flag.NewFlagSet("kb", flag.ContinueOnError)
	globals.SetInterspersed(false)
	globals.SetOutput(&strings.Builder{}) // discard pflag output

	flagHelp := globals.BoolP("help", "h", false, "Show help")
	flagCwd := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := globals.StringP("config", "c", "", "Use specified config `file`")
	flagSeed := globals.String("seed", "", "Load the starting board from `file` (JSON, JSONC or YAML)")
	flagVerbose := globals.BoolP("verbose", "v", false, "Log every transition (log_level=debug)")

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.Parse(args)
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, globals, nil)

		return 1
	}

	rest := globals.Args()

	if *flagHelp || len(rest) == 0 {
		printUsage(out, globals, commandList(config.Config{}, appDeps{}))

		return 0
	}

	workDir := *flagCwd
	if workDir != "" {
		workDir, err = filepath.Abs(workDir)
		if err != nil {
			fprintln(errOut, "error: invalid --cwd:", err)

			return 1
		}
	}

	var logLevelOverride string
	if *flagVerbose {
		logLevelOverride = log.DebugLevel.String()
	}

	cfg, err := config.LoadConfig(config.LoadConfigInput{
		WorkDirOverride:  workDir,
		ConfigPath:       *flagConfig,
		SeedOverride:     *flagSeed,
		LogLevelOverride: logLevelOverride,
		Env:              env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	deps := appDeps{
		stdin:  stdin,
		out:    out,
		logger: newLogger(errOut, cfg.LogLevel),
		fs:     fs.NewReal(),
		color:  cfg.ColorEnabled() && env["NO_COLOR"] == "" && isTerminal(out),
	}

	commands := commandList(cfg, deps)

	name := rest[0]

	var cmd *Command

	for _, c := range commands {
		if c.Name() == name {
			cmd = c

			break
		}
	}

	if cmd == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", ErrUnknownCommand, name))
		fprintln(errOut)
		printUsage(errOut, globals, commands)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	return cmd.Run(ctx, NewIO(out, errOut), rest[1:])
}

// appDeps are the process-level collaborators handed to commands.
type appDeps struct {
	stdin  io.Reader
	out    io.Writer
	logger *log.Logger
	fs     fs.FS
	color  bool
}

func commandList(cfg config.Config, deps appDeps) []*Command {
	return []*Command{
		ShowCmd(cfg, deps.color),
		ColumnsCmd(),
		PrintConfigCmd(cfg),
		SessionCmd(cfg, deps),
	}
}

// newLogger builds the stderr logger. level is validated by config loading;
// an unparsable level falls back to warn.
func newLogger(errOut io.Writer, level string) *log.Logger {
	logger := log.New()
	logger.SetOutput(errOut)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}

	logger.SetLevel(lvl)

	return logger
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	fprintln(w, "kb - lane board for drag-and-drop task moves")
	fprintln(w)
	fprintln(w, "Usage: kb [global flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Global flags:")

	var buf strings.Builder
	globals.SetOutput(&buf)
	globals.PrintDefaults()
	globals.SetOutput(&strings.Builder{})
	_, _ = io.WriteString(w, buf.String())

	if len(commands) == 0 {
		return
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range commands {
		fprintln(w, c.HelpLine())
	}

	fprintln(w)
	fprintln(w, "Run 'kb <command> --help' for command details.")
}
