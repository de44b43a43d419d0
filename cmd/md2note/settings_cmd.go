package main

import (
	"fmt"

	md2note "github.com/alnah/go-md2note"
)

// runSettings prints the effective conversion settings as YAML, after
// config, settings file and flag overrides are applied.
func runSettings(flags *settingsFlags, envCfg *envConfig, env *Environment) error {
	cfg, err := loadConfigFor(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(flags.common.settings, &flags.conversion, envCfg, cfg)
	if err != nil {
		return err
	}

	out, err := md2note.EncodeSettings(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	_, err = env.Stdout.Write(out)
	return err
}
