package utils

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger. InitLogger configures it once at
// startup; packages log through it directly.
var Logger = logrus.New()

// appNameHook prefixes every message with the service name so lines from
// several processes sharing one log sink stay attributable.
type appNameHook struct {
	appName string
}

func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// InitLogger applies LOG_LEVEL (default info) and LOG_FORMAT ("text", the
// default, or "json") to Logger.
func InitLogger(appName string) {
	initLogger(os.Stdout, appName, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

func initLogger(out io.Writer, appName, rawLevel, rawFormat string) {
	Logger.SetOutput(out)
	Logger.SetFormatter(logFormatter(rawFormat))
	Logger.SetLevel(logLevel(rawLevel))

	// Replacing keeps a second call from doubling the prefix.
	Logger.ReplaceHooks(make(logrus.LevelHooks))
	Logger.AddHook(&appNameHook{appName: appName})
}

func logLevel(raw string) logrus.Level {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		Logger.Warnf("Invalid LOG_LEVEL '%s', defaulting to INFO", name)
		return logrus.InfoLevel
	}
	return level
}

func logFormatter(raw string) logrus.Formatter {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "json":
		return &logrus.JSONFormatter{}
	case "", "text":
		return &logrus.TextFormatter{FullTimestamp: true}
	default:
		Logger.Warnf("Invalid LOG_FORMAT '%s', defaulting to text", raw)
		return &logrus.TextFormatter{FullTimestamp: true}
	}
}
