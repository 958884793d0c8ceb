// Command aiondata extracts, classifies and searches Aion client data.
package main

import (
	"os"

	"github.com/ant-admin92/AionDataExtractor/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
