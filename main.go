/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"os"

	"github.com/vipcxj/clamps/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
