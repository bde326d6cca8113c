package main

import (
	"github.com/nguyengg/xtar/internal/cmd"
)

func main() {
	p, err := cmd.NewParser()
	if err == nil {
		_, err = p.Parse()
	}

	exit(err)
}
