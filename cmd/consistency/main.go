package main

import "github.com/plocket/llm-survey/internal/cli"

func main() {
	cli.Execute()
}
