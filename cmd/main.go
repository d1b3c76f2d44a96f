package main

import "github.com/doitintl/bq-audit/cli"

func main() {
	cli.Execute()
}
