package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/skillguard/cmd/skillguard"
	"github.com/arthur-debert/skillguard/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := 0
	if err := skillguard.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
		// Policy failures are findings, not usage errors
		if errors.IsErrorCode(err, errors.ErrPolicyViolation) {
			code = 2
		}
	}

	stop()
	os.Exit(code)
}
