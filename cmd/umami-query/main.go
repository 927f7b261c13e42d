// Command umami-query runs one Umami report through the connector
package main

import (
	"os"

	"umamiconnector/internal/cli"
	"umamiconnector/internal/platform/config"
)

func main() {
	// missing .env files are fine; flags and the environment still apply
	_, _ = config.LoadEnv(config.DefaultEnvFiles...)

	if err := cli.Run(); err != nil {
		os.Exit(1)
	}
}
