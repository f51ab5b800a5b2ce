package app

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"ramacq/internal/audit"
	"ramacq/internal/domain"
	"ramacq/internal/services/acquisition"
	"ramacq/internal/services/analysis"
	"ramacq/internal/services/auth"
	"ramacq/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Evidence    domain.EvidenceStore
	Users       domain.UserStore
	Auth        domain.AuthService
	Acquisition *acquisition.Service
	Analysis    *analysis.Runner
	Audit       *audit.Trail
	Log         *logrus.Logger
	Home        string
}

// NewWire constructs the dependency graph from cfg. The home directory is
// created if missing; a missing Home defaults to $HOME/.ramacq.
func NewWire(cfg Config) (*Wire, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	home := cfg.Home
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(dir, ".ramacq")
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, err
	}

	evidenceStore, err := store.NewEvidenceStore(home, logger)
	if err != nil {
		return nil, err
	}
	userStore, err := store.NewUserStore(home, logger)
	if err != nil {
		return nil, err
	}
	authSvc, err := auth.New(userStore, logger)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Evidence:    evidenceStore,
		Users:       userStore,
		Auth:        authSvc,
		Acquisition: acquisition.New(logger),
		Analysis:    analysis.NewRunner(cfg.Vol3Path, cfg.Vol2Path, logger),
		Audit:       audit.NewTrail(),
		Log:         logger,
		Home:        home,
	}, nil
}
