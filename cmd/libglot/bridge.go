package main

/*
#include <stdlib.h>
#include "lasterror.h"
*/
import "C"

import (
	"errors"

	"glot"
)

var (
	errNullConfig   = errors.New("config is null")
	errNullSettings = errors.New("settings is null")
)

// storeError copies the message into the thread-local C error slot, which
// takes ownership of the allocation.
func storeError(err error) {
	C.glot_set_last_error(C.CString(err.Error()))
}

// ownedString allocates a C copy the caller must release through
// glot_free_string.
func ownedString(value string) *C.char {
	return C.CString(value)
}

func goInput(value *C.char) string {
	if value == nil {
		return ""
	}
	return C.GoString(value)
}

// borrowConfig resolves the handle for the duration of one exported call,
// recording the failure when the handle is null or not a config.
func borrowConfig(config C.uintptr_t) *glot.Config {
	cfg := configFromHandle(uintptr(config))
	if cfg == nil {
		storeError(errNullConfig)
	}
	return cfg
}

func borrowSettings(settings C.uintptr_t) *glot.Settings {
	s := settingsFromHandle(uintptr(settings))
	if s == nil {
		storeError(errNullSettings)
	}
	return s
}

func configSetString(config C.uintptr_t, value *C.char, set func(*glot.Config, string), clear func(*glot.Config)) C.bool {
	cfg := borrowConfig(config)
	if cfg == nil {
		return false
	}
	if value == nil {
		clear(cfg)
		return true
	}
	set(cfg, C.GoString(value))
	return true
}

func configGetString(config C.uintptr_t, get func(*glot.Config) (string, bool)) *C.char {
	cfg := borrowConfig(config)
	if cfg == nil {
		return nil
	}
	value, ok := get(cfg)
	if !ok {
		return nil
	}
	return ownedString(value)
}

func configSetFlag(config C.uintptr_t, value C.bool, set func(*glot.Config, bool)) C.bool {
	cfg := borrowConfig(config)
	if cfg == nil {
		return false
	}
	set(cfg, bool(value))
	return true
}

func configGetFlag(config C.uintptr_t, get func(*glot.Config) bool) C.bool {
	cfg := borrowConfig(config)
	if cfg == nil {
		return false
	}
	return C.bool(get(cfg))
}

func settingsSetString(settings C.uintptr_t, value *C.char, set func(*glot.Settings, string), clear func(*glot.Settings)) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	if value == nil {
		clear(s)
		return true
	}
	set(s, C.GoString(value))
	return true
}

func settingsGetString(settings C.uintptr_t, get func(*glot.Settings) (string, bool)) *C.char {
	s := borrowSettings(settings)
	if s == nil {
		return nil
	}
	value, ok := get(s)
	if !ok {
		return nil
	}
	return ownedString(value)
}
