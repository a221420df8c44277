// Package utils provides small helpers shared by the client, the transport and the CLI glue:
// content type checks, command line splitting, whitespace normalization and file checks.
package utils
