// Command abicodec encodes and decodes contract ABI data from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/branched-services/go-abicodec/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
