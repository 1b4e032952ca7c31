// Package config provides configuration loading, merging, and validation
// facilities for the server and the syncctl command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags (server only)
//  4. JSON config file
//
// Fields left unset by every source are taken from [Defaults].
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetCLIConfig] for syncctl.
package config
