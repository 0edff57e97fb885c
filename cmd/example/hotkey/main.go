// Demo: overlay configured from a TOML file, stopped with a global hotkey.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	overlay "github.com/jerryshell/windows-ez-overlay"
	"github.com/jerryshell/windows-ez-overlay/screen"
	"github.com/jerryshell/windows-ez-overlay/window"
)

type config struct {
	Title         string   `toml:"title"`
	RefreshRate   int      `toml:"refresh_rate"`
	StrokeWidth   int32    `toml:"stroke_width"`
	StrokeColor   string   `toml:"stroke_color"`
	TrackerLine   bool     `toml:"tracker_line"`
	ShowInTaskbar bool     `toml:"show_in_taskbar"`
	Hotkey        hkConfig `toml:"hotkey"`
}

type hkConfig struct {
	Modifiers []string `toml:"modifiers"`
	Key       string   `toml:"key"`
}

func defaultConfig() config {
	return config{
		RefreshRate: 60,
		StrokeWidth: 2,
		StrokeColor: "#EB6135",
		Hotkey: hkConfig{
			Modifiers: []string{"ctrl", "shift"},
			Key:       "Q",
		},
	}
}

func main() {
	path := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg := defaultConfig()
	if *path != "" {
		if _, err := toml.DecodeFile(*path, &cfg); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	mainthread.Init(func() { run(cfg) })
}

func run(cfg config) {
	if err := window.EnablePerMonitorDPI(); err != nil {
		log.Printf("dpi awareness: %v", err)
	}

	left, top, right, bottom, err := region(cfg.Title)
	if err != nil {
		log.Fatal(err)
	}

	store := overlay.NewRectStore(
		overlay.Rect{Left: 50, Top: 50, Right: 250, Bottom: 200},
	)

	ov, err := overlay.New(left, top, right, bottom, store, cfg.RefreshRate, cfg.ShowInTaskbar)
	if err != nil {
		log.Fatal(err)
	}
	color, err := parseColor(cfg.StrokeColor)
	if err != nil {
		log.Fatal(err)
	}
	ov.SetStroke(color, cfg.StrokeWidth)
	ov.SetDrawBottomLine(cfg.TrackerLine)

	hk := hotkey.New(parseModifiers(cfg.Hotkey.Modifiers), parseKey(cfg.Hotkey.Key))
	if err := hk.Register(); err != nil {
		log.Fatalf("register hotkey: %v", err)
	}
	defer hk.Unregister()

	done := make(chan error, 1)
	go func() { done <- ov.WindowLoop() }()

	fmt.Printf("overlay running, press %s+%s to quit\n",
		strings.Join(cfg.Hotkey.Modifiers, "+"), cfg.Hotkey.Key)

	select {
	case <-hk.Keydown():
		ov.Stop()
		err = <-done
	case err = <-done:
	}
	if err != nil {
		log.Fatal(err)
	}
}

func region(title string) (left, top, right, bottom int32, err error) {
	if title != "" {
		hwnd, err := window.FindByTitle(title)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		return window.GetWindowRect(hwnd)
	}
	mon, ok := screen.Primary()
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("no monitor attached")
	}
	b := mon.Bounds
	return b.Left, b.Top, b.Right, b.Bottom, nil
}

// parseColor reads a "#RRGGBB" string into a COLORREF.
func parseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("bad color %q, want #RRGGBB", s)
	}
	var r, g, b byte
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, fmt.Errorf("bad color %q: %v", s, err)
	}
	return overlay.RGB(r, g, b), nil
}

func parseModifiers(mods []string) []hotkey.Modifier {
	var result []hotkey.Modifier
	for _, mod := range mods {
		switch strings.ToLower(mod) {
		case "ctrl", "control":
			result = append(result, hotkey.ModCtrl)
		case "alt":
			result = append(result, hotkey.ModAlt)
		case "shift":
			result = append(result, hotkey.ModShift)
		case "win", "super":
			result = append(result, hotkey.ModWin)
		}
	}
	return result
}

func parseKey(key string) hotkey.Key {
	key = strings.ToUpper(key)
	if len(key) == 1 {
		c := key[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return hotkey.Key(c)
		}
	}
	switch key {
	case "ESC", "ESCAPE":
		return hotkey.KeyEscape
	case "SPACE":
		return hotkey.KeySpace
	case "RETURN", "ENTER":
		return hotkey.KeyReturn
	}
	return hotkey.KeyQ
}
