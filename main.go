package main

import "pricebook/cmd"

func main() {
	cmd.Execute()
}
