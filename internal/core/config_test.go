package core

import (
	"flag"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"tiny grid", func(c *Config) { c.Size = 2 }, false},
		{"zero tps", func(c *Config) { c.TPS = 0 }, false},
		{"negative probability", func(c *Config) { c.LiveProbability = -0.1 }, false},
		{"probability above one", func(c *Config) { c.LiveProbability = 1.1 }, false},
		{"zero tile", func(c *Config) { c.TileSize = 0 }, false},
		{"zero scale", func(c *Config) { c.Scale = 0 }, false},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: validation passed", tc.name)
		}
	}
}

func TestApplyVariantDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := DefaultConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-static"}); err != nil {
		t.Fatal(err)
	}
	cfg.ApplyVariantDefaults(fs)
	if cfg.Size != 32 {
		t.Fatalf("static variant default size = %d, want 32", cfg.Size)
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	cfg = DefaultConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-static", "-size", "48"}); err != nil {
		t.Fatal(err)
	}
	cfg.ApplyVariantDefaults(fs)
	if cfg.Size != 48 {
		t.Fatalf("explicit -size overridden to %d", cfg.Size)
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	cfg = DefaultConfig()
	cfg.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	cfg.ApplyVariantDefaults(fs)
	if cfg.Size != 64 {
		t.Fatalf("animated variant default size = %d, want 64", cfg.Size)
	}
}

func TestSimOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.SimOptions()
	if opts["size"] != "64" || opts["tile"] != "8" || opts["p"] != "0.4" {
		t.Fatalf("unexpected options %v", opts)
	}
}
