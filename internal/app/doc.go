// Package app wires configuration, logging and stores into the dependency
// graph the CLI runs against.
package app
