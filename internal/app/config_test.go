package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDirUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if got, want := configDir(), filepath.Join(dir, "picturedraw"); got != want {
		t.Errorf("configDir() = %s, want %s", got, want)
	}
}

func TestConfigDirFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "missing"))

	if got, want := configDir(), filepath.Join(home, ".config", "picturedraw"); got != want {
		t.Errorf("configDir() = %s, want %s", got, want)
	}
}

func TestInitializeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picturedraw", configFile)

	if err := initializeConfigIfNot(path); err != nil {
		t.Fatal(err)
	}
	conf, err := readConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if *conf != defaultConfig() {
		t.Errorf("initialized config %+v, want defaults", *conf)
	}

	// an existing file is left alone
	if err := os.WriteFile(path, []byte("WindowWidth = 321\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := initializeConfigIfNot(path); err != nil {
		t.Fatal(err)
	}
	conf, err = readConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.WindowWidth != 321 {
		t.Errorf("WindowWidth %d, want 321", conf.WindowWidth)
	}
}

func TestReadConfigNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFile)
	doc := `
ContentHeight = -5
PictureB = "elsewhere.png"
Theme = "purple"
Scaling = 0.0
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := readConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	def := defaultConfig()
	if conf.ContentHeight != def.ContentHeight {
		t.Errorf("ContentHeight %d, want %d", conf.ContentHeight, def.ContentHeight)
	}
	if conf.PictureA != def.PictureA || conf.PictureB != "elsewhere.png" {
		t.Errorf("pictures %s, %s", conf.PictureA, conf.PictureB)
	}
	if conf.Theme != "dark" || conf.Scaling != 1.0 {
		t.Errorf("theme %s scaling %v", conf.Theme, conf.Scaling)
	}
}

func TestReadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := readConfig(filepath.Join(dir, "nope.toml")); err == nil {
		t.Errorf("missing file accepted")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("WindowWidth = \"wide\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(bad); err == nil {
		t.Errorf("mistyped value accepted")
	}
}

func TestParseCLIOpts(t *testing.T) {
	opt, err := parseCLIOpts([]string{"drawpicture", "-log", "-config", "c.toml", "-snapshot", "out.png"})
	if err != nil {
		t.Fatal(err)
	}
	if !opt.doLog || opt.configPath != "c.toml" || opt.snapshot != "out.png" {
		t.Errorf("parsed %+v", opt)
	}

	opt, err = parseCLIOpts([]string{"drawpicture"})
	if err != nil {
		t.Fatal(err)
	}
	if opt != (CLIOpts{}) {
		t.Errorf("defaults %+v", opt)
	}
}
