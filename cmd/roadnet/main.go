// Command roadnet answers route, cycle, trim and lookup queries over a road
// network read from a YAML file, and generates synthetic network files.
//
//	roadnet generate grid --rows 3 --cols 4 -o city.yaml
//	roadnet -n city.yaml route shortest 0,0 300,200
//	roadnet -n city.yaml trim -o skeleton.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
