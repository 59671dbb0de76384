// Package commands defines the unitconv CLI and wires dependencies for subcommands.
//
// Commands
//
//   - convert      Convert one value between two units
//   - units        List units, symbols and accepted spellings
//   - table        Print the factor matrix
//   - interactive  Line-driven converter screen
//   - serve        Run the JSON HTTP API
//
// # Implementation
//
// The root command loads configuration from the environment (and an optional
// .env file), applies flag overrides and builds the app before any subcommand
// runs. Results go to stdout; logs and notices go to stderr.
//
// Negative values must follow "--" so they are not read as flags:
//
//	unitconv convert -- -3 m ft
package commands
