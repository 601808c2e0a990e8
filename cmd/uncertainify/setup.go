// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncertain/config"
	"github.com/katalvlaran/uncertain/random"
	"github.com/katalvlaran/uncertain/uncertain"
)

// loadSettings reads --config (or the defaults) and applies the flags the
// user actually set on top.
func loadSettings(cmd *cobra.Command, rf *rootFlags) (config.File, error) {
	settings := config.Default()
	if rf.configPath != "" {
		var err error
		if settings, err = config.Load(rf.configPath); err != nil {
			return config.File{}, err
		}
		log.Infof("loaded settings from %s", rf.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("density") {
		settings.Density = rf.density
	}
	if flags.Changed("seed") {
		settings.Seed = rf.seed
	}
	if flags.Changed("blur") {
		settings.Blur = rf.blur
	}

	return settings, settings.Validate()
}

// objectStream selects the stream objects draw from. The generator uses
// stream 0 of the same seed for its mixture parameters.
const objectStream uint64 = 1

// objectSource returns the factory's parent source for seed.
func objectSource(seed uint64) *random.Rand {
	return random.NewStream(seed, objectStream)
}

// newFactory builds the object factory for settings. Objects are seeded
// from settings.Seed so that runs are reproducible.
func newFactory(settings config.File) (*uncertain.Factory, error) {
	gen, err := settings.Generator()
	if err != nil {
		return nil, err
	}
	log.Debugf("density=%s blur=%t seed=%d", settings.Density, settings.Blur, settings.Seed)

	return uncertain.NewFactory(gen, settings.Blur, uncertain.WithSource(objectSource(settings.Seed)))
}

// openInput returns the CSV source named by --input.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return os.Open(path)
}

// loadObjects reads every CSV row and uncertainifies it.
func loadObjects(cmd *cobra.Command, rf *rootFlags) ([]*uncertain.Object, error) {
	settings, err := loadSettings(cmd, rf)
	if err != nil {
		return nil, err
	}
	factory, err := newFactory(settings)
	if err != nil {
		return nil, err
	}

	in, err := openInput(cmd, rf.input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	rows, err := readRows(in)
	if err != nil {
		return nil, err
	}
	log.Infof("read %d rows", len(rows))

	return factory.UncertainifyAll(rows)
}
