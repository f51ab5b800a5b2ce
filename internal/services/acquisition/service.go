package acquisition

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"
	"github.com/sirupsen/logrus"

	"ramacq/internal/crypto"
	"ramacq/internal/domain"
)

// A dump much smaller than this is treated as partial; typical systems
// produce several GiB.
const minPlausibleImageBytes = 100 << 20

var (
	// ErrCaseIDRequired is returned when the acquisition config has no case id.
	ErrCaseIDRequired = errors.New("case id is required")

	// ErrToolRequired is returned when no WinPmem executable path is configured.
	ErrToolRequired = errors.New("winpmem path is required for acquisition")
)

// Config describes one capture run.
type Config struct {
	CaseID     string
	OperatorID string
	OutputDir  string
	ToolPath   string   // WinPmem executable
	ExtraArgs  []string // passed through before the output path
	Label      string   // overrides the derived image id
}

// Result is a completed capture: the evidence record plus the tool
// transcript and the exact command used, for the audit trail.
type Result struct {
	Image   domain.MemoryImage
	Log     string
	Command []string
}

// Service runs memory acquisitions.
type Service struct {
	log *logrus.Logger
}

// New returns an acquisition service.
func New(logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{log: logger}
}

// Acquire captures a RAM image according to cfg. The image id is the
// label when given, otherwise <case id>_<UTC timestamp>. The returned
// record carries the SHA-256 of the written image and its size.
func (s *Service) Acquire(ctx context.Context, cfg Config) (Result, error) {
	caseID := strings.TrimSpace(cfg.CaseID)
	if caseID == "" {
		return Result{}, ErrCaseIDRequired
	}
	if cfg.ToolPath == "" {
		return Result{}, ErrToolRequired
	}
	if _, err := os.Stat(cfg.ToolPath); err != nil {
		return Result{}, errors.Wrapf(err, "winpmem executable not found at %s", cfg.ToolPath)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{}, errors.Wrap(err, "create output directory")
	}

	capturedAt := time.Now().UTC()
	imageID := cfg.Label
	if imageID == "" {
		imageID = fmt.Sprintf("%s_%s", caseID, capturedAt.Format("20060102_150405"))
	}
	imagePath := filepath.Join(cfg.OutputDir, imageID+".raw")

	s.preflight(cfg.OutputDir)

	command, output, err := s.capture(ctx, imagePath, cfg)
	if err != nil {
		return Result{}, err
	}

	sha, err := crypto.HashFile(imagePath)
	if err != nil {
		return Result{}, err
	}
	info, err := os.Stat(imagePath)
	if err != nil {
		return Result{}, errors.Wrap(err, "stat captured image")
	}

	image := domain.MemoryImage{
		ImageID:     imageID,
		SHA256:      sha,
		RecoveredBy: cfg.OperatorID,
		CapturedAt:  capturedAt,
		CaseID:      caseID,
		Path:        imagePath,
		SizeBytes:   info.Size(),
	}

	summary := []string{
		strings.TrimSpace(output),
		fmt.Sprintf("Saved at : %s", image.Path),
		fmt.Sprintf("SHA-256  : %s", image.SHA256),
		fmt.Sprintf("Size     : %.2f MiB", float64(image.SizeBytes)/(1<<20)),
	}
	return Result{
		Image:   image,
		Log:     strings.Join(nonEmpty(summary), "\n"),
		Command: command,
	}, nil
}

// preflight logs host RAM and free space in the output directory, since a
// full dump needs roughly physical-memory-sized free disk.
func (s *Service) preflight(outputDir string) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		s.log.WithError(err).Debug("could not read host memory size")
		return
	}
	usage, err := disk.Usage(outputDir)
	if err != nil {
		s.log.WithError(err).Debug("could not read output disk usage")
		return
	}
	entry := s.log.WithFields(logrus.Fields{
		"host_ram_bytes":  vm.Total,
		"disk_free_bytes": usage.Free,
	})
	if usage.Free < vm.Total {
		entry.Warn("free disk space is below physical memory size, capture may fail")
		return
	}
	entry.Info("acquisition preflight")
}

func (s *Service) capture(ctx context.Context, imagePath string, cfg Config) ([]string, string, error) {
	command := append([]string{cfg.ToolPath}, cfg.ExtraArgs...)
	// WinPmem takes the output path positionally unless the caller already
	// routed output through its own flags.
	if !hasOutputArg(cfg.ExtraArgs) {
		command = append(command, imagePath)
	}

	s.log.WithField("command", strings.Join(command, " ")).Info("starting memory acquisition")

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	combined, runErr := cmd.CombinedOutput()
	output := strings.TrimSpace(string(combined))

	info, statErr := os.Stat(imagePath)
	created := statErr == nil && info.Size() > 0

	if runErr != nil {
		if ctx.Err() != nil {
			return command, output, errors.Wrap(ctx.Err(), "acquisition interrupted")
		}
		exitCode := -1
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		if created {
			sizeMiB := float64(info.Size()) / (1 << 20)
			if info.Size() < minPlausibleImageBytes {
				return command, output, errors.Errorf(
					"winpmem exited with code %d and produced a suspiciously small image (%.2f MiB); "+
						"the dump is likely partial\n%s", exitCode, sizeMiB, output)
			}
			// Image looks complete despite the exit code; keep it but say so.
			warning := fmt.Sprintf(
				"winpmem exited with code %d but the image was written (%.2f MiB); verify its size against host RAM\n%s",
				exitCode, sizeMiB, output)
			return command, warning, nil
		}
		return command, output, errors.New(formatToolError(exitCode, output))
	}

	if !created {
		return command, output, errors.Errorf(
			"acquisition completed but no RAM image was produced\n%s", output)
	}
	if output == "" {
		output = "winpmem acquisition completed successfully"
	}
	return command, output, nil
}

// formatToolError turns a WinPmem failure into an operator-facing
// diagnostic. Exit code -1 nearly always means missing elevation or a
// blocked driver load.
func formatToolError(exitCode int, output string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "winpmem failed with exit code %d", exitCode)
	if output != "" {
		b.WriteString("\n")
		b.WriteString(output)
	}
	if exitCode == -1 || exitCode == 255 {
		b.WriteString("\nlikely causes: missing administrator privileges, " +
			"driver load failure, or security software blocking the capture")
	}
	return b.String()
}

func hasOutputArg(args []string) bool {
	for _, a := range args {
		if a == "--output" || a == "-o" {
			return true
		}
	}
	return false
}

func nonEmpty(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
