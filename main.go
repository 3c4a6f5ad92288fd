package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"state_diff/diff"
)

const appVersion = "1.0.0"

type cliOptions struct {
	granularity  string
	context      int
	diffOnly     bool
	noWordDiff   bool
	matcher      string
	structural   bool
	split        bool
	plain        bool
	historyLimit int
	watch        bool
	git          bool
	configPath   string
	version      bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cli, paths, err := parseArgs(args)
	if err != nil {
		return err
	}

	if cli.version {
		fmt.Printf("state_diff %s\n", appVersion)
		return nil
	}

	config, err := LoadConfig(cli.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cli.historyLimit > 0 {
		config.HistoryLimit = cli.historyLimit
	}
	opts := applyFlags(config.DiffOptions(), cli)

	logger := initLogger()
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: close logger: %v\n", closeErr)
		}
	}()

	logger.Info("state_diff starting", map[string]any{
		"version": appVersion,
		"watch":   cli.watch,
	})

	renderer := NewRenderer(!cli.plain)

	switch {
	case cli.watch:
		if len(paths) != 1 {
			return fmt.Errorf("watch mode takes exactly one file, got %d", len(paths))
		}
		err = runWatch(paths[0], opts, config, renderer, logger)
	case cli.git:
		if len(paths) != 1 {
			return fmt.Errorf("git mode takes exactly one file, got %d", len(paths))
		}
		err = runCompare(loadGitPair, paths[0], "", cli, opts, renderer, logger)
	default:
		if len(paths) != 2 {
			return fmt.Errorf("usage: state_diff [flags] OLD_FILE NEW_FILE")
		}
		err = runCompare(loadFilePair, paths[0], paths[1], cli, opts, renderer, logger)
	}
	if err != nil {
		return err
	}

	reportLoggerStats(logger)
	return nil
}

func parseArgs(args []string) (cliOptions, []string, error) {
	var cli cliOptions

	fs := flag.NewFlagSet("state_diff", flag.ContinueOnError)
	fs.StringVar(&cli.granularity, "granularity", "", "word diff granularity: chars, words, lines, trimmed-lines")
	fs.IntVar(&cli.context, "context", -1, "context lines around changes (with -diff-only)")
	fs.BoolVar(&cli.diffOnly, "diff-only", false, "show only changed regions with surrounding context")
	fs.BoolVar(&cli.noWordDiff, "no-word-diff", false, "disable word-level highlighting on modified lines")
	fs.StringVar(&cli.matcher, "matcher", "", "line matcher: greedy, lcs, myers")
	fs.BoolVar(&cli.structural, "structural", false, "print structural diff items instead of lines")
	fs.BoolVar(&cli.split, "split", false, "render side by side instead of unified")
	fs.BoolVar(&cli.plain, "plain", false, "disable colors and syntax highlighting")
	fs.BoolVar(&cli.watch, "watch", false, "watch a single file and diff successive snapshots")
	fs.BoolVar(&cli.git, "git", false, "diff the working file against its HEAD version")
	fs.IntVar(&cli.historyLimit, "history-limit", 0, "snapshots retained per source in watch mode (0 uses config)")
	fs.StringVar(&cli.configPath, "config", "", "path to config file")
	fs.BoolVar(&cli.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cli, nil, err
	}
	return cli, fs.Args(), nil
}

// applyFlags lets command line flags override config file values
func applyFlags(opts diff.Options, cli cliOptions) diff.Options {
	if cli.granularity != "" {
		opts.Granularity = diff.ParseGranularity(cli.granularity)
	}
	if cli.context >= 0 {
		opts.ContextLines = cli.context
	}
	if cli.diffOnly {
		opts.ShowDiffOnly = true
	}
	if cli.noWordDiff {
		opts.DisableWordDiff = true
	}
	if cli.matcher != "" {
		opts.Matcher = matcherByName(cli.matcher)
	}
	return opts
}

type pairLoader func(oldPath, newPath string, logger *Logger) (*Snapshot, *Snapshot, error)

func loadFilePair(oldPath, newPath string, logger *Logger) (*Snapshot, *Snapshot, error) {
	oldSnapshot, err := LoadSnapshot(oldPath, logger)
	if err != nil {
		return nil, nil, err
	}
	newSnapshot, err := LoadSnapshot(newPath, logger)
	if err != nil {
		return nil, nil, err
	}
	return oldSnapshot, newSnapshot, nil
}

func loadGitPair(path, _ string, logger *Logger) (*Snapshot, *Snapshot, error) {
	oldSnapshot, err := LoadHeadSnapshot(path, logger)
	if err != nil {
		return nil, nil, err
	}
	newSnapshot, err := LoadSnapshot(path, logger)
	if err != nil {
		return nil, nil, err
	}
	return oldSnapshot, newSnapshot, nil
}

// runCompare prints a one-shot diff to stdout
func runCompare(load pairLoader, oldPath, newPath string, cli cliOptions, opts diff.Options, renderer *Renderer, logger *Logger) error {
	oldSnapshot, newSnapshot, err := load(oldPath, newPath, logger)
	if err != nil {
		return err
	}

	var lines []string
	switch {
	case cli.structural:
		items := diff.Diff(oldSnapshot.Value, newSnapshot.Value)
		lines = renderer.RenderItems(items)
	case cli.split:
		records := diff.ComputeLineDiff(oldSnapshot.Value, newSnapshot.Value, opts)
		lines = renderer.RenderSplit(records, terminalWidth)
	default:
		records := diff.ComputeLineDiff(oldSnapshot.Value, newSnapshot.Value, opts)
		lines = renderer.RenderUnified(records)
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// runWatch starts the interactive TUI over a single watched file
func runWatch(path string, opts diff.Options, config Config, renderer *Renderer, logger *Logger) error {
	watcher, err := NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer watcher.Close()

	history, err := openConfiguredHistory(config, logger)
	if err != nil {
		logger.Warn("history unavailable", map[string]any{
			"error": err.Error(),
		})
	}
	if history != nil {
		defer history.Close()
	}

	program := tea.NewProgram(
		NewModel(path, opts, renderer, watcher, history, logger),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		logger.Error("program error", err, nil)
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// openConfiguredHistory opens the snapshot history store from config,
// defaulting to history.db inside the config directory.
func openConfiguredHistory(config Config, logger *Logger) (*History, error) {
	path := config.HistoryPath
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "history.db")
	}

	history, err := OpenHistory(path, config.HistoryLimit)
	if err != nil {
		return nil, err
	}
	logger.Debug("history opened", map[string]any{
		"path":  path,
		"limit": config.HistoryLimit,
	})
	return history, nil
}

func initLogger() *Logger {
	dir, err := configDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: config dir: %v\n", err)
		dir = ""
	}

	logger, err := NewLogger(INFO, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return logger
}

func reportLoggerStats(logger *Logger) {
	if !logger.HasErrors() {
		return
	}

	stats := logger.GetStats()
	fmt.Fprintf(os.Stderr, "\ncompleted with %d error(s)\n", stats.TotalErrors)
	if stats.TotalWarnings > 0 {
		fmt.Fprintf(os.Stderr, "warnings: %d\n", stats.TotalWarnings)
	}
}
