// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the logger, the conversion
// engine and, when a server URL is configured, the HTTP client, exposing
// them via the App struct for commands to use.
package app
