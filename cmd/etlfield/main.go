// Package main provides the etlfield CLI.
//
// etlfield works on the header views of a set of data files:
//   - validate checks the views against the structural rules
//   - merge combines the fields of every file into ETL fields
//   - units derives the ETL units of the merged fields
//   - migrate upgrades a persisted project store to the current schema
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
