package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "galaxy-gallery.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes logs to a file when debug is set, and discards them otherwise
// The terminal belongs to the UI, so nothing is ever written to stdout or stderr
func setupLogging(debug bool) (*zap.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}
	log.SetOutput(f)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zap.DebugLevel)
	logger := zap.New(core, zap.AddCaller()).With(zap.Int("pid", os.Getpid()))
	logger.Info("logging started", zap.String("path", logPath))

	return logger, f
}

// rotateLog renames the log aside with a timestamp once it exceeds maxLogSize
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(logDir, fmt.Sprintf("galaxy-gallery-%s.log", stamp))
	_ = os.Rename(logPath, rotated)
}
