package main

import "cheesecatalog/cmd"

func main() {
	cmd.Execute()
}
