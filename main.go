package main

import (
	cmd "github.com/reviewlens/reviewlens/cmd/reviewlens"
	"github.com/reviewlens/reviewlens/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting reviewlens")
	cmd.Execute()
}
