package main

import "github.com/ems-project/ems-backend/cmd"

func main() {
	cmd.Execute()
}
