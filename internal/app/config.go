package app

import "github.com/sirupsen/logrus"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string         // data directory, e.g. $HOME/.ramacq
	Vol3Path string         // Volatility 3 entrypoint; empty means "vol" on PATH
	Vol2Path string         // standalone Volatility 2 executable, optional
	Logger   *logrus.Logger // optional; defaults to logrus.New()
}
