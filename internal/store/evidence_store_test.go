package store_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"ramacq/internal/domain"
	"ramacq/internal/store"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testImage(id string) domain.MemoryImage {
	return domain.MemoryImage{
		ImageID:     id,
		SHA256:      "deadbeef",
		RecoveredBy: "u_admin",
		CapturedAt:  time.Now().UTC().Truncate(time.Second),
		CaseID:      "case-1",
		Path:        "/tmp/" + id + ".raw",
		SizeBytes:   42,
	}
}

func TestEvidenceStore_InitialisesBaseline(t *testing.T) {
	dir := t.TempDir()
	_, err := store.NewEvidenceStore(dir, quietLogger())
	require.NoError(t, err)

	// The backing file exists after construction so later reads never hit
	// the legacy-fallback path.
	_, statErr := os.Stat(filepath.Join(dir, "evidence.json.enc"))
	require.NoError(t, statErr)
}

func TestEvidenceStore_AddAndList(t *testing.T) {
	s, err := store.NewEvidenceStore(t.TempDir(), quietLogger())
	require.NoError(t, err)

	require.NoError(t, s.AddImage(testImage("img-1")))
	require.NoError(t, s.AddImage(testImage("img-2")))

	images, err := s.ListImages()
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.Equal(t, "img-1", images[0].ImageID)
	require.Equal(t, "img-2", images[1].ImageID)
}

func TestEvidenceStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewEvidenceStore(dir, quietLogger())
	require.NoError(t, err)
	require.NoError(t, s.AddImage(testImage("img-1")))

	reopened, err := store.NewEvidenceStore(dir, quietLogger())
	require.NoError(t, err)
	images, err := reopened.ListImages()
	require.NoError(t, err)
	require.Len(t, images, 1)
	require.Equal(t, "img-1", images[0].ImageID)
}

func TestEvidenceStore_ConcurrentAddsLoseNothing(t *testing.T) {
	const n = 25
	s, err := store.NewEvidenceStore(t.TempDir(), quietLogger())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.AddImage(testImage(fmt.Sprintf("img-%03d", i)))
		}(i)
	}
	wg.Wait()

	images, err := s.ListImages()
	require.NoError(t, err)
	require.Len(t, images, n)

	seen := make(map[string]bool, n)
	for _, img := range images {
		seen[img.ImageID] = true
	}
	require.Len(t, seen, n)
}

func TestEvidenceStore_Clear(t *testing.T) {
	s, err := store.NewEvidenceStore(t.TempDir(), quietLogger())
	require.NoError(t, err)
	require.NoError(t, s.AddImage(testImage("img-1")))
	require.NoError(t, s.Clear())

	images, err := s.ListImages()
	require.NoError(t, err)
	require.Empty(t, images)
}

func TestEvidenceStore_CaptureScenario(t *testing.T) {
	s, err := store.NewEvidenceStore(t.TempDir(), quietLogger())
	require.NoError(t, err)

	require.NoError(t, s.AddImage(domain.MemoryImage{
		ImageID:     "case-7_20250101_120000",
		SHA256:      "0f9a",
		RecoveredBy: "u_admin",
		CapturedAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		CaseID:      "case-7",
		Path:        "/tmp/img.raw",
		SizeBytes:   1048576,
	}))

	images, err := s.ListImages()
	require.NoError(t, err)
	require.Len(t, images, 1)
	require.Equal(t, "case-7", images[0].CaseID)
	require.Equal(t, int64(1048576), images[0].SizeBytes)
}
