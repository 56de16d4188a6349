package main

import "hogger/cmd"

func main() {
	cmd.Execute()
}
