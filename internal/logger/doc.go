// Package logger wraps a zap SugaredLogger behind context-first helpers.
// The level is atomic so the configuration can change verbosity after the
// logger has been built, and loggers can be named or enriched per context.
package logger
