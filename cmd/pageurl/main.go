package main

import (
	"os"

	"github.com/rohanthewiz/logger"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logger.LogErr(err, "pageurl failed")
		os.Exit(1)
	}
}
