package main

import "github.com/medera/medera_backend/cmd"

func main() {
	cmd.Execute()
}
