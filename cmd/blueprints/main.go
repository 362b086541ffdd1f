package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iw2rmb/blueprints"
)

func run() int {
	root := rootCmd()
	root.Version = blueprints.Version()
	if err := root.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
