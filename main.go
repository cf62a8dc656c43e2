package main

import "github.com/rentease/ms-go-rent-payments/cmd"

func main() {
	cmd.Execute()
}
