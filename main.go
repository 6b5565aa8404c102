package main

import (
	"github.com/DMGiulioRomano/tuning-systems-numbers-music/cmd"
)

func main() {
	cmd.Execute()
}
