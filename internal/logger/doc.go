// Package logger provides component-scoped structured logging for ytinfo on top of logrus.
//
// Features:
//   - Levels TRACE, DEBUG, INFO, WARN, ERROR (logrus levels)
//   - Component-based filtering
//   - Text, JSON and color output
//   - Per-logger fixed fields (e.g. a resolution id)
//
// Usage:
//
//	log := logger.WithComponent(logger.ComponentFormat)
//	log.Warn("Unknown format", map[string]interface{}{"itag": "99"})
//
//	config := logger.DefaultConfig()
//	config.Level = logger.DEBUG
//	config.Format = logger.FormatJSON
//	logger.SetGlobalLogger(logger.New(config))
//
// Components:
//   - ComponentApp: CLI and resolver lifecycle
//   - ComponentClient: HTTP client
//   - ComponentFetch: metadata endpoint requests
//   - ComponentFormat: catalog building and format selection
//   - ComponentCipher: signature deciphering
//   - ComponentDownloader: media transfer
package logger
