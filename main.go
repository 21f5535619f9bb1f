package main

import (
	"elementarium/cmd"
)

func main() {
	cmd.Execute()
}
