package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/davetashner/lsmodels/internal/redact"
)

// Version is set via -ldflags at build time.
var Version = "dev"

var errorLabel = color.New(color.FgRed, color.Bold)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the root command and reports any failure on stderr.
// It returns the process exit code.
func run(ctx context.Context, stderr io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	code, msg := ExitInvalidArgs, err.Error()
	var ece *exitCodeError
	if errors.As(err, &ece) {
		code, msg = ece.code, ece.msg
	}
	if msg != "" {
		fmt.Fprintf(stderr, "%s %s\n", errorLabel.Sprint("error:"), redact.String(msg))
	}
	return code
}
