package main

import "github.com/vietdv277/vpcplan/cmd"

func main() {
	cmd.Execute()
}
