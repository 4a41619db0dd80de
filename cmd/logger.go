package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	keyLogLevel = "log.level"
	keyLogFile  = "log.file"
)

var logger = log.New(io.Discard)

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "pipelay",
		ReportTimestamp: true,
	}), nil
}

// useLogger points the package logger at w.
func useLogger(w io.Writer, v *viper.Viper) error {
	l, err := newLogger(w, v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// useInteractiveLogger logs to log.file when set and discards otherwise, since
// the terminal belongs to the TUI. The returned func closes the file.
func useInteractiveLogger(v *viper.Viper) (func(), error) {
	path := v.GetString(keyLogFile)
	if path == "" {
		return func() {}, useLogger(io.Discard, v)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if err := useLogger(f, v); err != nil {
		f.Close()
		return nil, err
	}
	return func() { f.Close() }, nil
}
