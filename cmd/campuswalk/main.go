// Command campuswalk answers quickest-walk queries over a campus map, either
// one-shot from the terminal or as an HTTP API.
//
// Usage:
//
//	campuswalk --map campus.dot route "Union South" "Bascom Hall" --times
//	campuswalk --map campus.dot route "Union South" "Bascom Hall" --via "Memorial Union"
//	campuswalk --map campus.dot locations
//	campuswalk --map campus.dot reachable "Union South" --max-hops 2
//	campuswalk --config campuswalk.yaml serve --watch
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
