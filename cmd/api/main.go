// @title Event Lineup API
// @version 1.0
// @description Schedules performances inside events without overlaps and exports events as CSV.
// @BasePath /

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs

package main

import (
	"context"
	"os"

	_ "eventlineup/docs"
	"eventlineup/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
