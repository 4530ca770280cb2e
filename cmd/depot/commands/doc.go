// Package commands defines the depot CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - insert  Store an employee record
//   - get     Print one record by id
//   - list    Print every stored record
//   - demo    Insert sample records and print the full listing
//
// # Implementation
//
// The root command parses configuration from the environment and builds the
// app context (stores, logger) before any subcommand runs, so handlers share
// one dependency graph.
package commands
