// This file is part of the program "picturedraw".
// Please see the LICENSE file for copyright information.

package app

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	WindowWidth   int
	WindowHeight  int
	ContentWidth  int
	ContentHeight int
	PictureA      string
	PictureB      string
	Theme         string
	Scaling       float64
}

const configFile = "config.toml"

func defaultConfig() Config {
	return Config{
		WindowWidth:   600,
		WindowHeight:  600,
		ContentWidth:  100,
		ContentHeight: 100,
		PictureA:      "testdata/paul-klee-revolution-of-the-viaduct.jpeg",
		PictureB:      "testdata/wassily-kandinsky-yellow-red-blue.jpeg",
		Theme:         "dark",
		Scaling:       1.0,
	}
}

// loadConfig resolves, initializes and reads the config, exiting on failure.
// An empty path means the per-user config file.
func loadConfig(path string) *Config {
	if path == "" {
		path = filepath.Join(configDir(), configFile)
		if err := initializeConfigIfNot(path); err != nil {
			log.Fatalf("Couldn't initialize config: %v\n", err)
		}
	}
	log.Printf("Using config file: %s\n", path)

	conf, err := readConfig(path)
	if err != nil {
		log.Fatalf("Couldn't read config file: %v\n", err)
	}
	return conf
}

func initializeConfigIfNot(path string) error {
	log.Println("Checking if config needs to be initialized")

	dir := filepath.Dir(path)
	ok, err := exists(dir)
	if err != nil {
		return fmt.Errorf("check config directory: %w", err)
	}
	if !ok {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	ok, err = exists(path)
	if err != nil {
		return fmt.Errorf("check config file: %w", err)
	}
	if !ok {
		log.Println("Initializing config")
		conf := defaultConfig()
		return writeConfig(path, &conf)
	}
	return nil
}

// readConfig starts from the defaults, so keys missing from the file keep
// their default value.
func readConfig(path string) (*Config, error) {
	conf := defaultConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, err
	}
	conf.normalize()
	return &conf, nil
}

func writeConfig(path string, conf *Config) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, buffer.Bytes(), 0644)
}

func (c *Config) normalize() {
	def := defaultConfig()
	if c.WindowWidth <= 0 {
		c.WindowWidth = def.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = def.WindowHeight
	}
	if c.ContentWidth <= 0 {
		c.ContentWidth = def.ContentWidth
	}
	if c.ContentHeight <= 0 {
		c.ContentHeight = def.ContentHeight
	}
	if c.Scaling <= 0 {
		c.Scaling = def.Scaling
	}
	if c.Theme != "dark" && c.Theme != "white" {
		log.Printf("Unknown theme '%s', using '%s'\n", c.Theme, def.Theme)
		c.Theme = def.Theme
	}
}

func configDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "picturedraw")
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			log.Printf("Resolved $%s to '%s'\n", xdg, dir)
			return dir
		}

	}

	log.Printf("Couldn't resolve $%s falling back to '%s'\n", xdg, fallback)
	return fallback
}
