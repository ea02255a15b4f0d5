package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/tint"
)

// fileConfig is the YAML palette file.
//
//	swatches:
//	  - hex: "#ff8000"
//	  - name: rebeccapurple
//	    alpha: 0.5
//	  - hsv: [200, 0.6, 0.9]
//	    set: {v: 0.5}
//	  - rgb: [0.1, 0.2, 0.3]
type fileConfig struct {
	Swatches []swatchConfig `yaml:"swatches"`
}

// swatchConfig describes one color. Exactly one of Hex, Name, RGB or HSV
// must be given. Alpha and Set are applied afterwards; Set keys are channel
// letters and are applied in the order r, g, b, h, s, v, a.
type swatchConfig struct {
	Hex   string             `yaml:"hex,omitempty"`
	Name  string             `yaml:"name,omitempty"`
	RGB   []float64          `yaml:"rgb,omitempty"`
	HSV   []float64          `yaml:"hsv,omitempty"`
	Alpha *float64           `yaml:"alpha,omitempty"`
	Set   map[string]float64 `yaml:"set,omitempty"`
}

func loadConfig(path string) (*fileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	var cfg fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return &cfg, nil
}

// Palette builds the configured colors in file order.
func (cfg *fileConfig) Palette() ([]tint.Color, error) {
	out := make([]tint.Color, 0, len(cfg.Swatches))
	for i := range cfg.Swatches {
		c, err := cfg.Swatches[i].Color()
		if err != nil {
			return nil, errors.Wrapf(err, "swatch %d", i)
		}
		out = append(out, c)
	}
	return out, nil
}

// Color builds the swatch's color.
func (sc *swatchConfig) Color() (tint.Color, error) {
	c, err := sc.base()
	if err != nil {
		return tint.Color{}, err
	}

	if sc.Alpha != nil {
		c.SetA(*sc.Alpha)
	}

	for key := range sc.Set {
		if _, err := tint.ParseChannel(key); err != nil {
			return tint.Color{}, err
		}
	}
	for _, ch := range tint.Channels() {
		if v, ok := sc.Set[ch.String()]; ok {
			c.Set(ch, v)
		}
	}
	return c, nil
}

func (sc *swatchConfig) base() (tint.Color, error) {
	given := 0
	for _, set := range []bool{sc.Hex != "", sc.Name != "", sc.RGB != nil, sc.HSV != nil} {
		if set {
			given++
		}
	}
	if given != 1 {
		return tint.Color{}, errors.Errorf("want exactly one of hex, name, rgb, hsv; got %d", given)
	}

	switch {
	case sc.Hex != "":
		return tint.ParseHex(sc.Hex)
	case sc.Name != "":
		return tint.Named(sc.Name)
	case sc.RGB != nil:
		if len(sc.RGB) != 3 {
			return tint.Color{}, errors.Errorf("rgb wants 3 values, got %d", len(sc.RGB))
		}
		return tint.RGB(sc.RGB[0], sc.RGB[1], sc.RGB[2]), nil
	default:
		if len(sc.HSV) != 3 {
			return tint.Color{}, errors.Errorf("hsv wants 3 values, got %d", len(sc.HSV))
		}
		return tint.HSV(sc.HSV[0], sc.HSV[1], sc.HSV[2]), nil
	}
}
