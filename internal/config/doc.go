// Package config assembles the effective configuration for the transkeys
// CLI by merging several configuration sources into one canonical object,
// resolving all filesystem paths it contains to absolute paths, and
// validating that required directories exist before a command runs.
//
// Configuration layers are applied per-field in the following priority
// order (earlier sources win):
//  1. Inline configuration passed by the caller (command flags)
//  2. Global transloco configuration supplied by a provider
//  3. Built-in defaults
//
// The main entry point is [Resolver.Resolve].
package config
