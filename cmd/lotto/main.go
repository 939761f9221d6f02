// Command lotto recommends 6/45 lottery number sets.
package main

import (
	"os"

	_ "time/tzdata" // fortune.timezone must resolve on hosts without zoneinfo
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
