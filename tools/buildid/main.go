package main

import (
	"fmt"
	"os"
	"time"

	"tabletop-server/internal/version"
)

// Утилита для CI: печатает дату сборки и номер билда,
// которые уходят в -ldflags (internal/version).
func main() {
	date := time.Now().UTC().Format("2006-01-02")
	if len(os.Args) > 1 {
		date = os.Args[1]
	}

	version.BuildDate = date

	id, err := version.CalculateBuildID()
	if err != nil {
		fmt.Fprintf(os.Stderr, "buildid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("BUILD_DATE=%s\n", date)
	fmt.Printf("BUILD_ID=%d\n", id)
}
