package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"errors"
)

//export glot_settings_load_from_file
func glot_settings_load_from_file(path *C.char) C.uintptr_t {
	if path == nil {
		storeError(errors.New("settings path is null"))
		return 0
	}
	handle, err := loadSettingsHandle(C.GoString(path))
	if err != nil {
		storeError(err)
		return 0
	}
	return C.uintptr_t(handle)
}

//export glot_run
func glot_run(config C.uintptr_t, input *C.char) *C.char {
	result, err := runHandle(uintptr(config), goInput(input))
	if err != nil {
		storeError(err)
		return nil
	}
	return ownedString(result)
}

//export glot_run_with_settings
func glot_run_with_settings(config C.uintptr_t, settings C.uintptr_t, input *C.char) *C.char {
	result, err := runWithSettingsHandle(uintptr(config), uintptr(settings), goInput(input))
	if err != nil {
		storeError(err)
		return nil
	}
	return ownedString(result)
}
