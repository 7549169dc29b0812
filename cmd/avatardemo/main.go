// Command avatardemo renders one letter avatar PNG per name.
//
//	avatardemo render --shape oval --out avatars "Ada Lovelace" "Grace Hopper"
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
