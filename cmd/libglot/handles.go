package main

import (
	"context"
	"runtime/cgo"

	"glot"
)

// Handles map the opaque integers crossing the C boundary to live Go
// objects. Zero is the null handle and never maps to an object; a nonzero
// handle of the wrong type resolves to nil rather than panicking.

func newConfigHandle() uintptr {
	return uintptr(cgo.NewHandle(glot.NewConfig()))
}

func configFromHandle(h uintptr) *glot.Config {
	if h == 0 {
		return nil
	}
	cfg, ok := cgo.Handle(h).Value().(*glot.Config)
	if !ok {
		return nil
	}
	return cfg
}

func freeConfigHandle(h uintptr) {
	if h == 0 {
		return
	}
	cgo.Handle(h).Delete()
}

func newSettingsHandle(s *glot.Settings) uintptr {
	return uintptr(cgo.NewHandle(s))
}

func settingsFromHandle(h uintptr) *glot.Settings {
	if h == 0 {
		return nil
	}
	s, ok := cgo.Handle(h).Value().(*glot.Settings)
	if !ok {
		return nil
	}
	return s
}

func freeSettingsHandle(h uintptr) {
	if h == 0 {
		return
	}
	cgo.Handle(h).Delete()
}

// loadSettingsHandle parses the settings file at path into a fresh handle.
// The parse is all-or-nothing; no handle is allocated on failure.
func loadSettingsHandle(path string) (uintptr, error) {
	s, err := glot.LoadSettings(path)
	if err != nil {
		return 0, err
	}
	return newSettingsHandle(s), nil
}

func runHandle(configHandle uintptr, input string) (string, error) {
	return glot.Run(context.Background(), configFromHandle(configHandle), input)
}

func runWithSettingsHandle(configHandle, settingsHandle uintptr, input string) (string, error) {
	return glot.RunWithSettings(context.Background(),
		configFromHandle(configHandle), settingsFromHandle(settingsHandle), input)
}
