package main

import (
	"fmt"
	"os"

	"github.com/Tamagosushio/esperopp/frontend"
)

const manifestName = "esperopp.toml"

// loadSource resolves the input file and reads it. With an explicit path the
// file is read directly; without one the esperopp.toml manifest in the
// working directory names the entry file.
func loadSource(path string) (src string, code string, err error) {
	if path == "" {
		content, err := os.ReadFile(manifestName)
		if err != nil {
			return "", "", fmt.Errorf("no input file and no %s: %w", manifestName, err)
		}
		manifest, err := frontend.HandleEsperoToml(string(content))
		if err != nil {
			return "", "", fmt.Errorf("%s: %w", manifestName, err)
		}
		path = manifest.Main
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return path, string(data), nil
}
