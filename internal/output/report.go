package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rvo/rentvsown-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// GenerateReport resolves a formatter by name (or alias) and writes its output
// to a timestamped file in the working directory.
func GenerateReport(results *domain.Comparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	ext := f.Name()
	switch {
	case ext == "console":
		ext = "txt"
	case strings.Contains(ext, "csv"):
		ext = "csv"
	}
	_, err := WriteFormatted(f, results, ext)
	return err
}
