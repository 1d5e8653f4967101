package main

import (
	"github.com/ainlabs/explorer/app/tooling/admin/cmd"
)

func main() {
	cmd.Execute()
}
