// Package cli defines the Cobra command tree for the stamp CLI. Each file in
// this package registers one top-level command (new, doctor, config, version)
// with the root command. Command implementations delegate to internal packages
// for the scaffolding logic and only handle flag parsing and output formatting.
package cli
