package main

import (
	"context"
	"os"
	_ "time/tzdata"

	"github.com/secmon-lab/controlchart/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
