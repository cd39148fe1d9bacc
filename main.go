package main

import "loanable-inventory/cmd"

func main() {
	cmd.Execute()
}
