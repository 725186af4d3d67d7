package main

import "github.com/entrocheck/entrocheck/cmd/entrocheck"

func main() { entrocheck.Execute() }
