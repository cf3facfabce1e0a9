package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Badsnus/qrforge/internal/adapters/controller/cli"
	"github.com/Badsnus/qrforge/pkg/logger"

	_ "time/tzdata"
)

var version = "v0.1.0"

func main() {
	cli.Version = version

	err := cli.NewRootCommand().ExecuteContext(context.Background())
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
