// Command hsmattest decodes an HSM attestation blob and prints its
// attribute records as JSON.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error while parsing = '%s'\n", err)
		os.Exit(1)
	}
}
