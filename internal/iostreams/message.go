package iostreams

import "fmt"

// PrintSuccess prints a success message to stderr with a checkmark icon.
func (ios *IOStreams) PrintSuccess(format string, args ...any) error {
	cs := ios.ColorScheme()
	_, err := fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.SuccessIcon(), fmt.Sprintf(format, args...))
	return err
}

// PrintWarning prints a warning message to stderr with an exclamation icon.
func (ios *IOStreams) PrintWarning(format string, args ...any) error {
	cs := ios.ColorScheme()
	_, err := fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.WarningIcon(), fmt.Sprintf(format, args...))
	return err
}

// PrintFailure prints an error message to stderr with an X icon.
func (ios *IOStreams) PrintFailure(format string, args ...any) error {
	cs := ios.ColorScheme()
	_, err := fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.FailureIcon(), fmt.Sprintf(format, args...))
	return err
}

// PrintEmpty prints an empty state message to stderr.
// Format: "No {noun} found." followed by optional hint lines.
func (ios *IOStreams) PrintEmpty(noun string, hints ...string) error {
	cs := ios.ColorScheme()
	if _, err := fmt.Fprintln(ios.ErrOut, cs.Muted(fmt.Sprintf("No %s found.", noun))); err != nil {
		return err
	}
	for _, hint := range hints {
		if _, err := fmt.Fprintln(ios.ErrOut, cs.Muted("  "+hint)); err != nil {
			return err
		}
	}
	return nil
}
