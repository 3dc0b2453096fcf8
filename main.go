package main

import "github.com/naka-gawa/candidate-search/cmd"

func main() {
	cmd.Execute()
}
