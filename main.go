package main

import "products-api/cmd"

func main() {
	cmd.Execute()
}
