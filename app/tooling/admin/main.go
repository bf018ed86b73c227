package main

import "github.com/ardanlabs/chain/app/tooling/admin/cmd"

func main() {
	cmd.Execute()
}
