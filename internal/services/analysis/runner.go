package analysis

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Version selects which Volatility generation to invoke.
type Version string

const (
	V3 Version = "v3"
	V2 Version = "v2"
)

func (v Version) label() string {
	if v == V2 {
		return "Volatility 2"
	}
	return "Volatility 3"
}

// ErrorKind classifies a plugin run failure.
type ErrorKind int

const (
	// KindGeneric is an unclassified non-zero exit.
	KindGeneric ErrorKind = iota
	// KindInvalidPlugin means the plugin is unknown to the installation.
	KindInvalidPlugin
	// KindMissingPlugin means the tool never received a plugin argument.
	KindMissingPlugin
	// KindSymbols means required symbol files were unavailable.
	KindSymbols
)

// RunError is a classified Volatility failure. Output holds the combined
// tool transcript for display.
type RunError struct {
	Kind     ErrorKind
	Version  Version
	ExitCode int
	Output   string
}

func (e *RunError) Error() string {
	switch e.Kind {
	case KindInvalidPlugin:
		return fmt.Sprintf("%s does not provide the requested plugin (exit %d)", e.Version.label(), e.ExitCode)
	case KindMissingPlugin:
		return fmt.Sprintf("%s did not receive a plugin to run", e.Version.label())
	case KindSymbols:
		return fmt.Sprintf("%s could not satisfy symbol requirements (exit %d); let it download symbols and retry", e.Version.label(), e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d", e.Version.label(), e.ExitCode)
}

// RunOptions tunes one plugin run.
type RunOptions struct {
	Version   Version
	ToolPath  string // overrides the runner's configured path
	ExtraArgs []string
}

// Runner invokes Volatility against memory images.
type Runner struct {
	Vol3Path string // vol entrypoint or vol.py; empty means "vol" on PATH
	Vol2Path string // standalone Volatility 2 executable
	Python   string // interpreter for .py entrypoints; defaults to python3
	log      *logrus.Logger
}

// NewRunner returns a runner with the given tool locations.
func NewRunner(vol3Path, vol2Path string, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
	}
	return &Runner{Vol3Path: vol3Path, Vol2Path: vol2Path, Python: "python3", log: logger}
}

// Run executes one plugin against imagePath and returns the combined tool
// output. Failures surface as *RunError where classifiable.
func (r *Runner) Run(ctx context.Context, imagePath, plugin string, opts RunOptions) (string, error) {
	if strings.TrimSpace(plugin) == "" {
		return "", errors.New("a volatility plugin name is required")
	}
	if _, err := os.Stat(imagePath); err != nil {
		return "", errors.Wrapf(err, "memory image not found at %s", imagePath)
	}
	version := opts.Version
	if version == "" {
		version = V3
	}
	if version != V2 && version != V3 {
		return "", errors.Errorf("unsupported volatility version %q", version)
	}

	base, err := r.baseCommand(version, opts.ToolPath)
	if err != nil {
		return "", err
	}
	normalized := NormalizePlugin(plugin, version)

	var command []string
	if version == V3 {
		command = append(base, "-f", imagePath)
		if !contains(opts.ExtraArgs, "--cache-path") {
			command = append(command, "--cache-path", symbolCacheDir())
		}
		command = append(command, normalized)
		command = append(command, opts.ExtraArgs...)
	} else {
		command = append(base, "-f", imagePath, normalized)
		command = append(command, opts.ExtraArgs...)
	}

	exitCode, output, err := r.exec(ctx, command)
	if err != nil {
		return "", err
	}

	// Some Volatility 2 builds want the plugin immediately after the
	// executable; retry in that order before reporting failure.
	if version == V2 && exitCode != 0 && strings.Contains(strings.ToLower(output), "you must specify something to do") {
		retry := append(append([]string{}, base...), normalized, "-f", imagePath)
		retry = append(retry, opts.ExtraArgs...)
		exitCode, output, err = r.exec(ctx, retry)
		if err != nil {
			return "", err
		}
	}

	if exitCode != 0 {
		return "", classify(version, exitCode, output)
	}
	return output, nil
}

// Probe verifies a Volatility installation by asking it for usage output.
func (r *Runner) Probe(ctx context.Context, version Version, toolPath string) (string, error) {
	if version == "" {
		version = V3
	}
	base, err := r.baseCommand(version, toolPath)
	if err != nil {
		return "", err
	}
	_, output, err := r.exec(ctx, append(base, "--help"))
	if err != nil {
		return "", err
	}
	lower := strings.ToLower(output)
	if strings.Contains(output, "Volatility") || strings.Contains(lower, "usage:") || strings.Contains(output, "PLUGIN") {
		return fmt.Sprintf("%s is installed and working.\n\n%s", version.label(), output), nil
	}
	return "", errors.Errorf("%s did not respond to --help:\n%s", version.label(), output)
}

func (r *Runner) baseCommand(version Version, override string) ([]string, error) {
	path := override
	if path == "" {
		if version == V3 {
			path = r.Vol3Path
		} else {
			path = r.Vol2Path
		}
	}
	switch {
	case path == "" && version == V3:
		return []string{"vol"}, nil
	case path == "":
		return nil, errors.New("volatility 2 executable path is not configured")
	case strings.EqualFold(filepath.Ext(path), ".py"):
		python := r.Python
		if python == "" {
			python = "python3"
		}
		return []string{python, path}, nil
	default:
		return []string{path}, nil
	}
}

func (r *Runner) exec(ctx context.Context, command []string) (int, string, error) {
	r.log.WithField("command", strings.Join(command, " ")).Debug("running volatility")
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	combined, runErr := cmd.CombinedOutput()
	output := strings.TrimSpace(string(combined))

	if runErr == nil {
		return 0, output, nil
	}
	if ctx.Err() != nil {
		return 0, output, errors.Wrap(ctx.Err(), "volatility run interrupted")
	}
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return exitErr.ExitCode(), output, nil
	}
	return 0, output, errors.Wrap(runErr, "start volatility")
}

func classify(version Version, exitCode int, output string) *RunError {
	lower := strings.ToLower(output)
	kind := KindGeneric
	switch {
	case strings.Contains(lower, "invalid choice") || strings.Contains(output, "error: argument PLUGIN"):
		kind = KindInvalidPlugin
	case strings.Contains(output, "You must specify something to do"):
		kind = KindMissingPlugin
	case strings.Contains(output, "Unsatisfied requirement") || strings.Contains(lower, "symbol"):
		kind = KindSymbols
	}
	return &RunError{Kind: kind, Version: version, ExitCode: exitCode, Output: output}
}

// NormalizePlugin converts between the dotted Volatility 3 names and the
// bare Volatility 2 ones: v2 wants "pslist", v3 wants "windows.pslist".
func NormalizePlugin(plugin string, version Version) string {
	plugin = strings.TrimSpace(plugin)
	if version == V2 {
		if i := strings.LastIndex(plugin, "."); i >= 0 {
			return plugin[i+1:]
		}
		return plugin
	}
	if !strings.Contains(plugin, ".") {
		return "windows." + plugin
	}
	return plugin
}

// symbolCacheDir mirrors where Volatility 3 keeps its symbol cache.
func symbolCacheDir() string {
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		dir := filepath.Join(local, "volatility3", "cache")
		_ = os.MkdirAll(dir, 0o755)
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".local", "share", "volatility3", "cache")
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

func contains(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}
