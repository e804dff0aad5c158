// Package brane holds the shared identity of the Brane demo package
// binaries.
package brane

// Version is reported by the version commands, the MCP server
// implementation info, and the /version HTTP endpoint.
const Version = "v0.1.0"
