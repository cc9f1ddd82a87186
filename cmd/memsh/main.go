package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/atinylittleshell/memsh/internal/bash"
	"github.com/atinylittleshell/memsh/internal/config"
	"github.com/atinylittleshell/memsh/internal/core"
	"github.com/atinylittleshell/memsh/internal/repl"
	"github.com/atinylittleshell/memsh/internal/styles"
	"github.com/atinylittleshell/memsh/internal/vfs"
)

var BUILD_VERSION = "dev"

//go:embed config.default.yaml
var defaultConfigContent string

var command = flag.String("c", "", "run a command")
var configFlag = flag.String("config", "", "path to the config file (default ~/.memsh/config.yaml)")

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `memsh - a shell whose filesystem lives in memory

USAGE:
  memsh [options]

MODES:
  memsh                   Start an interactive session
  memsh < commands.txt    Run one command per line and print the transcript
  memsh -c "command"      Run a single command

CONFIGURATION:
  The prompt, the theme and the starting filesystem are read from
  ~/.memsh/config.yaml. Without that file a small demo filesystem is used.

OPTIONS:
`

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	result, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR("memsh: "+err.Error()))
		os.Exit(1)
	}

	logger, err := initializeLogger(result.Config.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("-------- new memsh session --------", zap.Any("args", os.Args))

	for _, configErr := range result.Errors {
		fmt.Fprintln(os.Stderr, styles.WARN("memsh: "+configErr.Error()))
	}

	if err := run(result.Config, logger, *command, os.Stdin, os.Stdout); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		fmt.Fprintln(os.Stderr, styles.ERROR("memsh: "+err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, cmd string, in io.Reader, out io.Writer) error {
	sh, err := bash.New(bash.Options{
		Recall: cfg.Recall(),
		Logger: logger,
	})
	if err != nil {
		return err
	}
	state := cfg.InitialState()

	// memsh -c "ls"
	if cmd != "" {
		runner := &repl.LineRunner{Bash: sh, Prompt: cfg.Prompt, Out: out}
		runner.Run(cmd, state)
		return nil
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return runInteractiveShell(sh, state, cfg, logger)
	}

	runner := &repl.LineRunner{Bash: sh, Prompt: cfg.Prompt, Echo: true, Out: out}
	_, err = runner.RunAll(in, state)
	return err
}

func runInteractiveShell(sh *bash.Bash, state bash.State, cfg *config.Config, logger *zap.Logger) error {
	theme := repl.ThemeFor(cfg.Theme)

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 0
	}
	repl.RenderWelcome(os.Stdout, repl.WelcomeInfo{
		Version: BUILD_VERSION,
		Prompt:  cfg.Prompt,
		Tree:    vfs.Count(state.Structure),
	}, theme, width)

	model := repl.NewModel(sh, state, repl.Options{
		Prompt: cfg.Prompt,
		Theme:  theme,
		Logger: logger,
	})
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("failed to run interactive session: %w", err)
	}
	return nil
}

// loadConfig reads the config file at path, or the default config file when
// path is empty. When the default file does not exist the embedded demo
// configuration is used instead.
func loadConfig(path string) (*config.LoadResult, error) {
	loader := config.NewLoader(nil)
	if path != "" {
		return loader.LoadFromFile(path)
	}

	if _, err := os.Stat(core.ConfigFile()); errors.Is(err, os.ErrNotExist) {
		return loader.LoadFromString(defaultConfigContent)
	}
	return loader.LoadDefaultConfigPath()
}

func initializeLogger(level string) (*zap.Logger, error) {
	logLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	// Logs only go to file to avoid interfering with the Bubble Tea UI.
	// Use `tail -f ~/.memsh/memsh.log` to monitor them.
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	return loggerConfig.Build()
}
