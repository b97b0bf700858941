// dnsdbq CLI entrypoint - delegates to cli.NewRootCmd.
package main

import (
	"fmt"
	"os"

	"github.com/hstern/dnsdb-query/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
