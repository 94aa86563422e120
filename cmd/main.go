package main

import (
	"os"

	"github.com/dilshankm/echo-home/cmd/echohome"
)

func main() {
	if err := echohome.Execute(); err != nil {
		os.Exit(1)
	}
}
