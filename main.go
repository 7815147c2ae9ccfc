package main

import (
	"github.com/Super-Badmen-Viper/CineSong/cmd"
)

func main() {
	cmd.Execute()
}
