package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"errors"
	"fmt"

	"glot"
)

//export glot_settings_new
func glot_settings_new() C.uintptr_t {
	return C.uintptr_t(newSettingsHandle(glot.NewSettings()))
}

//export glot_settings_free
func glot_settings_free(settings C.uintptr_t) {
	freeSettingsHandle(uintptr(settings))
}

//export glot_settings_set_translated_suffix
func glot_settings_set_translated_suffix(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetTranslatedSuffix, (*glot.Settings).ClearTranslatedSuffix)
}

//export glot_settings_get_translated_suffix
func glot_settings_get_translated_suffix(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).TranslatedSuffix)
}

//export glot_settings_set_translation_ignore_file
func glot_settings_set_translation_ignore_file(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetTranslationIgnoreFile, (*glot.Settings).ClearTranslationIgnoreFile)
}

//export glot_settings_get_translation_ignore_file
func glot_settings_get_translation_ignore_file(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).TranslationIgnoreFile)
}

//export glot_settings_set_overlay_text_color
func glot_settings_set_overlay_text_color(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetOverlayTextColor, (*glot.Settings).ClearOverlayTextColor)
}

//export glot_settings_get_overlay_text_color
func glot_settings_get_overlay_text_color(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).OverlayTextColor)
}

//export glot_settings_set_overlay_stroke_color
func glot_settings_set_overlay_stroke_color(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetOverlayStrokeColor, (*glot.Settings).ClearOverlayStrokeColor)
}

//export glot_settings_get_overlay_stroke_color
func glot_settings_get_overlay_stroke_color(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).OverlayStrokeColor)
}

//export glot_settings_set_overlay_fill_color
func glot_settings_set_overlay_fill_color(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetOverlayFillColor, (*glot.Settings).ClearOverlayFillColor)
}

//export glot_settings_get_overlay_fill_color
func glot_settings_get_overlay_fill_color(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).OverlayFillColor)
}

//export glot_settings_set_overlay_font_family
func glot_settings_set_overlay_font_family(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetOverlayFontFamily, (*glot.Settings).ClearOverlayFontFamily)
}

//export glot_settings_get_overlay_font_family
func glot_settings_get_overlay_font_family(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).OverlayFontFamily)
}

//export glot_settings_set_overlay_font_path
func glot_settings_set_overlay_font_path(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetOverlayFontPath, (*glot.Settings).ClearOverlayFontPath)
}

//export glot_settings_get_overlay_font_path
func glot_settings_get_overlay_font_path(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).OverlayFontPath)
}

//export glot_settings_set_whisper_model
func glot_settings_set_whisper_model(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetWhisperModel, (*glot.Settings).ClearWhisperModel)
}

//export glot_settings_get_whisper_model
func glot_settings_get_whisper_model(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).WhisperModel)
}

//export glot_settings_set_server_host
func glot_settings_set_server_host(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetServerHost, (*glot.Settings).ClearServerHost)
}

//export glot_settings_get_server_host
func glot_settings_get_server_host(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).ServerHost)
}

//export glot_settings_set_server_tmp_dir
func glot_settings_set_server_tmp_dir(settings C.uintptr_t, value *C.char) C.bool {
	return settingsSetString(settings, value, (*glot.Settings).SetServerTmpDir, (*glot.Settings).ClearServerTmpDir)
}

//export glot_settings_get_server_tmp_dir
func glot_settings_get_server_tmp_dir(settings C.uintptr_t) *C.char {
	return settingsGetString(settings, (*glot.Settings).ServerTmpDir)
}

//export glot_settings_set_ocr_normalize
func glot_settings_set_ocr_normalize(settings C.uintptr_t, value C.bool) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	s.SetOCRNormalize(bool(value))
	return true
}

//export glot_settings_get_ocr_normalize
func glot_settings_get_ocr_normalize(settings C.uintptr_t) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	return C.bool(s.OCRNormalize())
}

//export glot_settings_set_history_limit
func glot_settings_set_history_limit(settings C.uintptr_t, value C.size_t) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	s.SetHistoryLimit(int(value))
	return true
}

//export glot_settings_get_history_limit
func glot_settings_get_history_limit(settings C.uintptr_t) C.size_t {
	s := borrowSettings(settings)
	if s == nil {
		return 0
	}
	return C.size_t(s.HistoryLimit())
}

//export glot_settings_set_backup_ttl_days
func glot_settings_set_backup_ttl_days(settings C.uintptr_t, value C.uint64_t) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	s.SetBackupTTLDays(uint64(value))
	return true
}

//export glot_settings_get_backup_ttl_days
func glot_settings_get_backup_ttl_days(settings C.uintptr_t) C.uint64_t {
	s := borrowSettings(settings)
	if s == nil {
		return 0
	}
	return C.uint64_t(s.BackupTTLDays())
}

//export glot_settings_set_directory_translation_threads
func glot_settings_set_directory_translation_threads(settings C.uintptr_t, value C.size_t) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	s.SetDirectoryTranslationThreads(int(value))
	return true
}

//export glot_settings_get_directory_translation_threads
func glot_settings_get_directory_translation_threads(settings C.uintptr_t) C.size_t {
	s := borrowSettings(settings)
	if s == nil {
		return 0
	}
	value, ok := s.DirectoryTranslationThreads()
	if !ok {
		return 0
	}
	return C.size_t(value)
}

//export glot_settings_set_overlay_font_size
func glot_settings_set_overlay_font_size(settings C.uintptr_t, value C.float) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	s.SetOverlayFontSize(float64(value))
	return true
}

//export glot_settings_get_overlay_font_size
func glot_settings_get_overlay_font_size(settings C.uintptr_t) C.float {
	s := borrowSettings(settings)
	if s == nil {
		return -1
	}
	value, ok := s.OverlayFontSize()
	if !ok {
		return -1
	}
	return C.float(value)
}

//export glot_settings_set_server_port
func glot_settings_set_server_port(settings C.uintptr_t, port C.uint16_t) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	return C.bool(s.SetServerPort(uint16(port)))
}

//export glot_settings_get_server_port
func glot_settings_get_server_port(settings C.uintptr_t) C.uint16_t {
	s := borrowSettings(settings)
	if s == nil {
		return 0
	}
	port, ok := s.ServerPort()
	if !ok {
		return 0
	}
	return C.uint16_t(port)
}

//export glot_settings_clear_system_languages
func glot_settings_clear_system_languages(settings C.uintptr_t) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	s.ClearSystemLanguages()
	return true
}

//export glot_settings_add_system_language
func glot_settings_add_system_language(settings C.uintptr_t, code *C.char) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	if code == nil {
		storeError(errors.New("language code is null"))
		return false
	}
	s.AddSystemLanguage(C.GoString(code))
	return true
}

//export glot_settings_system_language_len
func glot_settings_system_language_len(settings C.uintptr_t) C.size_t {
	s := borrowSettings(settings)
	if s == nil {
		return 0
	}
	return C.size_t(s.SystemLanguageCount())
}

//export glot_settings_get_system_language
func glot_settings_get_system_language(settings C.uintptr_t, index C.size_t) *C.char {
	s := borrowSettings(settings)
	if s == nil {
		return nil
	}
	value, ok := s.SystemLanguageAt(int(index))
	if !ok {
		storeError(fmt.Errorf("system language index %d out of range", int(index)))
		return nil
	}
	return ownedString(value)
}

//export glot_settings_set_formal
func glot_settings_set_formal(settings C.uintptr_t, key *C.char, value *C.char) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	if key == nil {
		storeError(errors.New("key is null"))
		return false
	}
	if value == nil {
		storeError(errors.New("value is null"))
		return false
	}
	s.SetFormal(C.GoString(key), C.GoString(value))
	return true
}

//export glot_settings_get_formal
func glot_settings_get_formal(settings C.uintptr_t, key *C.char) *C.char {
	s := borrowSettings(settings)
	if s == nil {
		return nil
	}
	if key == nil {
		storeError(errors.New("key is null"))
		return nil
	}
	value, ok := s.Formal(C.GoString(key))
	if !ok {
		storeError(fmt.Errorf("formal style not found: %s", C.GoString(key)))
		return nil
	}
	return ownedString(value)
}

//export glot_settings_remove_formal
func glot_settings_remove_formal(settings C.uintptr_t, key *C.char) C.bool {
	s := borrowSettings(settings)
	if s == nil {
		return false
	}
	if key == nil {
		storeError(errors.New("key is null"))
		return false
	}
	return C.bool(s.RemoveFormal(C.GoString(key)))
}

//export glot_settings_formal_len
func glot_settings_formal_len(settings C.uintptr_t) C.size_t {
	s := borrowSettings(settings)
	if s == nil {
		return 0
	}
	return C.size_t(s.FormalCount())
}
