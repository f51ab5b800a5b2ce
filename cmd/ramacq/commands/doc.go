// Package commands defines the ramacq CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login      Verify operator credentials
//   - users      List, add, or remove workstation accounts
//   - evidence   Show or clear the captured-image record
//   - acquire    Capture a RAM image and record it as evidence
//   - analyze    Run a Volatility plugin against a captured image
//   - plugins    Print the curated plugin catalog
//
// # Implementation
//
// The root command builds the dependency graph (encrypted stores, auth
// service, tool runners) before any subcommand runs, so handlers share one
// app context rooted at the --home directory.
package commands
