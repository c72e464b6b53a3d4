package frontend

import (
	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// EsperoToml is the project manifest, read from esperopp.toml.
type EsperoToml struct {
	Name    string `toml:"name" validate:"required"`
	Version string `toml:"version" validate:"required"`
	Main    string `toml:"main"`
}

// DefaultMain is the entry file used when the manifest leaves `main` unset.
const DefaultMain = "main.epp"

func HandleEsperoToml(tomlContent string) (EsperoToml, error) {
	var et EsperoToml
	_, err := toml.Decode(tomlContent, &et)
	if err != nil {
		return et, err
	}
	validate := validator.New()
	if err := validate.Struct(et); err != nil {
		return et, err
	}
	if et.Main == "" {
		et.Main = DefaultMain
	}
	return et, nil
}
