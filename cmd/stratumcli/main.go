package main

import cli "Stratum/internal/cli"

func main() {
	cli.Execute()
}
