package main

import (
	"github.com/joho/godotenv"

	"github.com/UzairRan/studymind-cli/cmd"
)

func main() {
	// Optional .env for local development; real env always wins.
	_ = godotenv.Load()
	cmd.Execute()
}
