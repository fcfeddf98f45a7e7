package main

import "github.com/rpupo63/developer-projects-backend/cmd"

func main() {
	cmd.Execute()
}
