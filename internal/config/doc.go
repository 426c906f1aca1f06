// Package config provides configuration loading, merging, and validation
// facilities for the credstore application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults (seed literals, connection timeout)
//
// The main entry point is [GetStructuredConfig].
package config
