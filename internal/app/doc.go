// Package app wires application dependencies for the CLI.
//
// It builds the encrypted stores, the auth service, and the tool
// orchestration services from Config, exposing them via the Wire struct
// for commands to use.
package app
