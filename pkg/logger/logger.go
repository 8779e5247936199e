package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu       sync.Mutex
	minLevel = LevelInfo

	debugColor = color.New(color.FgCyan)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// * SetLevel controls the minimum level that gets written
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

func logf(l Level, tag string, c *color.Color, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if l < minLevel {
		return
	}

	ts := time.Now().Format("2006/01/02 15:04:05")
	fmt.Fprintf(os.Stdout, "%s %s %s\n", ts, c.Sprintf("[%s]", tag), fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) {
	logf(LevelDebug, "DEBUG", debugColor, format, args...)
}

func Info(format string, args ...any) {
	logf(LevelInfo, "INFO", infoColor, format, args...)
}

func Warn(format string, args ...any) {
	logf(LevelWarn, "WARN", warnColor, format, args...)
}

func Error(format string, args ...any) {
	logf(LevelError, "ERROR", errorColor, format, args...)
}
