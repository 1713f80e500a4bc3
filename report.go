package main

import (
	"io"

	"gopkg.in/yaml.v3"
)

type _Result struct {
	Limit        string `yaml:"limit,omitempty"`
	Instructions int    `yaml:"instructions"`
	Regions      int    `yaml:"regions"`
	Volume       int64  `yaml:"volume"`
	Elapsed      string `yaml:"elapsed"`
}

type _Report struct {
	Instructions   int     `yaml:"instructions"`
	Initialization _Result `yaml:"initialization"`
	Reboot         _Result `yaml:"reboot"`
}

func (r _Report) writeText(w io.Writer) {
	fprintf(w, "There are %d cubes active in the initialisation procedure\n", r.Initialization.Volume)
	fprintf(w, "There are %d cubes active in the full reactor\n", r.Reboot.Volume)
}

func (r _Report) writeYAML(w io.Writer) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(r); err != nil {
		return err
	}
	return e.Close()
}
