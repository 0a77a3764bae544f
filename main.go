package main

import "github.com/mobiusclinic/clinica_backend/cmd"

func main() {
	cmd.Execute()
}
