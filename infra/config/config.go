package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/rs/zerolog/log"
)

// Load reads a json config file into v.
func Load(path string, v interface{}) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load config from %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not unmarshal the config from %s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("loaded config")
	return nil
}

// MustLoad is Load, panicking on failure.
func MustLoad(path string, v interface{}) {
	if err := Load(path, v); err != nil {
		panic(err.Error())
	}
}
