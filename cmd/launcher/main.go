// Package main is the deployment entry point. It validates the environment,
// provisions dependencies and execs the server process.
package main

import (
	"os"

	"calendar-assistant/internal/launcher"
)

func main() {
	os.Exit(launcher.New().Run())
}
