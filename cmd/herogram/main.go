package main

import (
	"errors"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		if errors.Is(err, errRejected) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
