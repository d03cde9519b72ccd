// Package log defines the logger engine of the contract callers.
// The unique feature is that it can create a child logger derived from the parent logger.
// Each logger defines a unique color style for the message outputs.
//
// The logs are written to the standard error, so the standard output
// keeps only the results of the command.
package log

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/gamut"
)

// Logger is the wrapper over the logger and keeps the style.
// The style is generated randomly.
type Logger struct {
	logger log.Logger
	style  LoggerStyle
}

// LoggerStyle defines the various colors for each log parts.
type LoggerStyle struct {
	prefix    lipgloss.Style
	separator lipgloss.Style
}

func randomStyle() (LoggerStyle, error) {
	rawPalette, err := gamut.Generate(2, gamut.PastelGenerator{})
	if err != nil {
		return LoggerStyle{}, fmt.Errorf("gamut.Generate: %w", err)
	}
	palette := make([]lipgloss.Color, len(rawPalette))
	for i, raw := range rawPalette {
		lighter := gamut.Lighter(raw, 0.05)
		palette[i] = lipgloss.Color(gamut.ToHex(lighter))
	}

	// web: questions/42480000/python-ansi-colour-codes-transparent-background
	backgroundColor := lipgloss.Color("49m")

	style := LoggerStyle{}

	style.prefix = lipgloss.NewStyle().
		Bold(true).
		Faint(true).
		Background(backgroundColor).
		Foreground(palette[0])

	style.separator = lipgloss.NewStyle().
		Faint(true).
		Background(backgroundColor).
		Foreground(palette[1])

	return style, nil
}

func (style LoggerStyle) setPrimary() LoggerStyle {
	log.PrefixStyle = style.prefix
	log.SeparatorStyle = style.separator

	return style
}

// New logger with the prefix and timestamp.
// It generates the random color style.
func New(prefix string, timestamp bool) (*Logger, error) {
	randomStyle, err := randomStyle()
	if err != nil {
		return nil, fmt.Errorf("random_style: %w", err)
	}

	logger := log.New()
	logger.SetPrefix(prefix)
	logger.SetReportCaller(false)
	logger.SetReportTimestamp(timestamp)

	newLogger := Logger{
		logger: logger,
		style:  randomStyle,
	}

	return &newLogger, nil
}

// Fatal prints the message with the default logger, then calls os.Exit(1).
// Used when the application logger could not be created.
func Fatal(title string, kv ...interface{}) {
	log.Fatal(title, kv...)
}

// Prefix returns the prefix of the logger, including the parents' prefixes.
func (logger *Logger) Prefix() string {
	return logger.logger.GetPrefix()
}

// EnableDebug switches the logger to print the debug messages as well.
func (logger *Logger) EnableDebug() {
	logger.logger.SetLevel(log.DebugLevel)
}

// Debug prints the message only if debug was enabled
func (logger *Logger) Debug(title string, kv ...interface{}) {
	logger.style.setPrimary()
	logger.logger.Debug(title, kv...)
}

// Info prints the information
func (logger *Logger) Info(title string, kv ...interface{}) {
	logger.style.setPrimary()
	logger.logger.Info(title, kv...)
}

// Fatal prints the error message and then calls the os.Exit()
func (logger *Logger) Fatal(title string, kv ...interface{}) {
	logger.style.setPrimary()
	logger.logger.Fatal(title, kv...)
}

// Child logger from the parent with its own color style.
//
// For example:
//
//	parent, _ := log.New("call_transaction", false)
//	abi_log := parent.Child("abi")
//	client_log := parent.Child("client", "network", "sepolia")
//
//	parent.Info("starting")
//	abi_log.Info("loaded", "functions", 4)
//	client_log.Info("connected")
//
//	// prints the following
//	// INFO call_transaction: starting
//	// INFO call_transaction/abi: loaded functions=4
//	// INFO call_transaction/client: connected network=sepolia
func (logger *Logger) Child(prefix string, kv ...interface{}) *Logger {
	child := logger.logger.With(kv...)

	child.SetPrefix(logger.logger.GetPrefix() + "/" + prefix)

	return &Logger{
		logger: child,
		style:  logger.style,
	}
}
