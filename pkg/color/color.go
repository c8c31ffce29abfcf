package color

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	BrightRed = "\033[91m"
)

var colorEnabled = true

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stderr) {
		colorEnabled = false
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return color + text + Reset
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	return Colorize(Bold, text)
}

func Line(line int) string {
	pos := fmt.Sprintf("line %d", line)
	if !colorEnabled {
		return pos
	}
	return CyanText(pos)
}

// ErrorAtLine renders a classified error with the offending source line.
func ErrorAtLine(kind string, line int, message, source string) string {
	if line <= 0 {
		if !colorEnabled {
			return fmt.Sprintf("%s: %s", kind, message)
		}
		return fmt.Sprintf("%s: %s", BrightRedText(BoldText(kind)), message)
	}

	if !colorEnabled {
		return fmt.Sprintf("%s at line %d: %s\n%4d | %s", kind, line, message, line, source)
	}

	return fmt.Sprintf("%s at %s: %s\n%s",
		BrightRedText(BoldText(kind)),
		Line(line),
		message,
		GrayText(fmt.Sprintf("%4d | %s", line, source)))
}
