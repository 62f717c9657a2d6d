/*
Copyright © 2026 tieubaoca
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tieubaoca/pdf2md/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; API keys may come from flags or the environment.
	_ = godotenv.Load()
}
