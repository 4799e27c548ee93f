package main

import (
	"os"

	"github.com/schmitthub/tagsweep/internal/tagsweep"
)

func main() {
	os.Exit(tagsweep.Main())
}
