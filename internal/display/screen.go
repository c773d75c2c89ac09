package display

import (
	"io"
	"os"

	"github.com/ahmetb/go-cursor"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Screen clears the terminal between rooms. Clearing is a no-op unless it
// was enabled and the output is a terminal, so piped output stays clean.
type Screen struct {
	out     io.Writer
	enabled bool
}

func NewScreen(out io.Writer, enabled bool) *Screen {
	return &Screen{
		out:     out,
		enabled: enabled && IsTerminal(out),
	}
}

// Clear blanks the screen and homes the cursor.
func (s *Screen) Clear() error {
	if !s.enabled {
		return nil
	}
	_, err := io.WriteString(s.out, cursor.ClearEntireScreen()+cursor.MoveTo(1, 1))
	return err
}
