package main

import "inventree-sync/cmd"

func main() {
	cmd.Execute()
}
