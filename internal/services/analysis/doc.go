// Package analysis runs Volatility plugins against captured memory
// images. It supports Volatility 3 (script or module entrypoint) and the
// standalone Volatility 2 builds, normalizes plugin names between the two,
// and classifies the common failure modes (bad plugin name, missing
// symbols) so the front-end can show actionable messages.
package analysis
