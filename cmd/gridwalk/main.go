// Command gridwalk loads a cell layout and prints the states a navigator
// yields along a chosen direction.
//
//	gridwalk walk --layout glider.yml --direction east
//	GRIDWALK_DIRECTION=south gridwalk walk --layout glider.yml
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
