package main

import (
	"os"

	"github.com/jhoicas/Almacen-cli/internal/interfaces/cli"
)

func main() {
	os.Exit(cli.Execute())
}
