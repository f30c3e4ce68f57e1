package main

import (
	"os"

	"github.com/zonevi/zonevi/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
