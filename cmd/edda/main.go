package main

import (
	"github.com/eddadb/edda/cmd/edda/cmd"
)

func main() {
	cmd.Execute()
}
