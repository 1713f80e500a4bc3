package main

import (
	"os"

	"github.com/b97tsk/reboot/cuboid"
	"github.com/b97tsk/reboot/input"
)

func _loadInstructions(name string) (instructions []cuboid.Instruction, err error) {
	if name == "-" {
		return input.Read(os.Stdin)
	}
	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer file.Close()
	return input.Read(file)
}
