package main

import (
	"os"

	"github.com/schmitthub/semanticlogger/internal/semlog"
)

func main() {
	os.Exit(semlog.Main())
}
