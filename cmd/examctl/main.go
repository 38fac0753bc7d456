package main

import (
	"fmt"
	"os"

	"github.com/edupract/exam_platform/internal/cli"
)

func main() {
	app := &cli.App{}
	root := cli.NewRootCmd(app)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "examctl: %v\n", err)
		os.Exit(1)
	}
}
