// Package logger wraps zerolog with networkkit conventions: leveled
// structured logging, component tagging, and console or JSON output.
//
//	log := logger.New(&logger.Config{Level: "debug", Format: "json"}, "networkkit")
//	log.Info("request sent", logger.Fields("status", 200, "path", "/todos"))
package logger
