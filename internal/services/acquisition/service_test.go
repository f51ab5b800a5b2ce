package acquisition

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger)
}

func TestAcquire_RequiresCaseID(t *testing.T) {
	_, err := testService().Acquire(context.Background(), Config{
		CaseID:   "   ",
		ToolPath: "/usr/bin/true",
	})
	require.ErrorIs(t, err, ErrCaseIDRequired)
}

func TestAcquire_RequiresTool(t *testing.T) {
	_, err := testService().Acquire(context.Background(), Config{CaseID: "case-1"})
	require.ErrorIs(t, err, ErrToolRequired)
}

func TestAcquire_MissingToolPath(t *testing.T) {
	_, err := testService().Acquire(context.Background(), Config{
		CaseID:    "case-1",
		ToolPath:  "/definitely/not/winpmem.exe",
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "winpmem executable not found")
}

func TestHasOutputArg(t *testing.T) {
	require.False(t, hasOutputArg(nil))
	require.False(t, hasOutputArg([]string{"-2", "-W"}))
	require.True(t, hasOutputArg([]string{"--output", "x.raw"}))
	require.True(t, hasOutputArg([]string{"-o", "x.raw"}))
}

func TestFormatToolError(t *testing.T) {
	msg := formatToolError(-1, "driver load failed")
	require.Contains(t, msg, "exit code -1")
	require.Contains(t, msg, "administrator privileges")

	msg = formatToolError(3, "")
	require.Contains(t, msg, "exit code 3")
	require.NotContains(t, msg, "administrator")
}
