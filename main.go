/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/sumwatshade/pipelay/cmd"

func main() {
	cmd.Execute()
}
