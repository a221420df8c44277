// Package app provides the entry points of the esv-reader commands.
// Each entry point builds the ESV client and the service components from the
// configuration, runs one command and reports fatal errors through the logger.
package app
