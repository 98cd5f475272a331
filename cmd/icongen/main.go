package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/intuitionamiga/fixpoint/internal/icon"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout)
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "Usage: icongen <outputIcoPath>")
		return exitUsage
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "icongen <outputIcoPath>",
		Short:         "Write the FixPoint application icon as an .ico file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			// Extra arguments are ignored.
			if len(args) < 1 || args[0] == "" {
				return errUsage
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			abs, err := generateIcon(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Icon generated: %s\n", highlight(stdout, abs))
			return nil
		},
	}
}

// generateIcon writes the outlined yellow bar icon to path and returns the
// absolute path written.
func generateIcon(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(abs); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	data, err := icon.ICO(icon.Render(icon.DefaultColor, true))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", abs, err)
	}
	return abs, nil
}

// highlight colors s green when w is an interactive terminal.
func highlight(w io.Writer, s string) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return s
	}
	return "\x1b[32m" + s + "\x1b[0m"
}
