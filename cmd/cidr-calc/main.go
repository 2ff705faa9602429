package main

import (
	"os"

	app "github.com/ak7sky/cidr-calc/internal"
)

func main() {
	os.Exit(app.Run(os.Args))
}
