package main

import "github.com/user/token-auditor/cmd"

func main() {
	cmd.Execute()
}
