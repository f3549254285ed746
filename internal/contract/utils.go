package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Owner tier label constants.
const (
	EliteValue      = "Elite"      // Sustained winner
	ContenderValue  = "Contender"  // Above .500 all-time
	AverageValue    = "Average"    // Hovering around .500
	StrugglingValue = "Struggling" // Below .400 all-time
)

// Color variables for console output.
var (
	EliteColor      = color.New(color.FgGreen, color.Bold) // eliteColor marks the league's dominant owners.
	ContenderColor  = color.New(color.FgCyan)              // contenderColor marks winning records.
	AverageColor    = color.New(color.FgYellow)            // averageColor marks middle-of-the-pack records.
	StrugglingColor = color.New(color.FgRed)               // strugglingColor marks losing records.
)

// GetPlainLabel returns a plain text tier label for an all-time win
// percentage. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(winPct float64) string {
	switch {
	case winPct >= 0.600:
		return EliteValue
	case winPct >= 0.500:
		return ContenderValue
	case winPct >= 0.400:
		return AverageValue
	default:
		return StrugglingValue
	}
}

// GetColorLabel returns a colored tier label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(winPct float64) string {
	text := GetPlainLabel(winPct)

	switch text {
	case EliteValue:
		return EliteColor.Sprint(text)
	case ContenderValue:
		return ContenderColor.Sprint(text)
	case AverageValue:
		return AverageColor.Sprint(text)
	default: // "Struggling"
		return StrugglingColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateName truncates an owner or team name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both content
// and the "..." marker; smaller widths return the name unchanged.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
