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

//export glot_config_new
func glot_config_new() C.uintptr_t {
	return C.uintptr_t(newConfigHandle())
}

//export glot_config_free
func glot_config_free(config C.uintptr_t) {
	freeConfigHandle(uintptr(config))
}

//export glot_config_set_lang
func glot_config_set_lang(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetLang, (*glot.Config).ClearLang)
}

//export glot_config_get_lang
func glot_config_get_lang(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).Lang)
}

//export glot_config_set_source_lang
func glot_config_set_source_lang(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetSourceLang, (*glot.Config).ClearSourceLang)
}

//export glot_config_get_source_lang
func glot_config_get_source_lang(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).SourceLang)
}

//export glot_config_set_model
func glot_config_set_model(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetModel, (*glot.Config).ClearModel)
}

//export glot_config_get_model
func glot_config_get_model(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).Model)
}

//export glot_config_set_key
func glot_config_set_key(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetKey, (*glot.Config).ClearKey)
}

//export glot_config_get_key
func glot_config_get_key(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).Key)
}

//export glot_config_set_formal
func glot_config_set_formal(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetFormal, (*glot.Config).ClearFormal)
}

//export glot_config_get_formal
func glot_config_get_formal(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).Formal)
}

//export glot_config_set_data
func glot_config_set_data(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetData, (*glot.Config).ClearData)
}

//export glot_config_get_data
func glot_config_get_data(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).Data)
}

//export glot_config_set_data_mime
func glot_config_set_data_mime(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetDataMIME, (*glot.Config).ClearDataMIME)
}

//export glot_config_get_data_mime
func glot_config_get_data_mime(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).DataMIME)
}

//export glot_config_set_out_path
func glot_config_set_out_path(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetOutPath, (*glot.Config).ClearOutPath)
}

//export glot_config_get_out_path
func glot_config_get_out_path(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).OutPath)
}

//export glot_config_set_settings_path
func glot_config_set_settings_path(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetSettingsPath, (*glot.Config).ClearSettingsPath)
}

//export glot_config_get_settings_path
func glot_config_get_settings_path(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).SettingsPath)
}

//export glot_config_set_whisper_model
func glot_config_set_whisper_model(config C.uintptr_t, value *C.char) C.bool {
	return configSetString(config, value, (*glot.Config).SetWhisperModel, (*glot.Config).ClearWhisperModel)
}

//export glot_config_get_whisper_model
func glot_config_get_whisper_model(config C.uintptr_t) *C.char {
	return configGetString(config, (*glot.Config).WhisperModel)
}

//export glot_config_set_slang
func glot_config_set_slang(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetSlang)
}

//export glot_config_get_slang
func glot_config_get_slang(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).Slang)
}

//export glot_config_set_overwrite
func glot_config_set_overwrite(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetOverwrite)
}

//export glot_config_get_overwrite
func glot_config_get_overwrite(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).Overwrite)
}

//export glot_config_set_force_translation
func glot_config_set_force_translation(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetForceTranslation)
}

//export glot_config_get_force_translation
func glot_config_get_force_translation(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).ForceTranslation)
}

//export glot_config_set_show_enabled_languages
func glot_config_set_show_enabled_languages(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetShowEnabledLanguages)
}

//export glot_config_get_show_enabled_languages
func glot_config_get_show_enabled_languages(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).ShowEnabledLanguages)
}

//export glot_config_set_show_enabled_styles
func glot_config_set_show_enabled_styles(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetShowEnabledStyles)
}

//export glot_config_get_show_enabled_styles
func glot_config_get_show_enabled_styles(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).ShowEnabledStyles)
}

//export glot_config_set_show_models_list
func glot_config_set_show_models_list(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetShowModelsList)
}

//export glot_config_get_show_models_list
func glot_config_get_show_models_list(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).ShowModelsList)
}

//export glot_config_set_show_whisper_models
func glot_config_set_show_whisper_models(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetShowWhisperModels)
}

//export glot_config_get_show_whisper_models
func glot_config_get_show_whisper_models(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).ShowWhisperModels)
}

//export glot_config_set_show_histories
func glot_config_set_show_histories(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetShowHistories)
}

//export glot_config_get_show_histories
func glot_config_get_show_histories(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).ShowHistories)
}

//export glot_config_set_pos
func glot_config_set_pos(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetPOS)
}

//export glot_config_get_pos
func glot_config_get_pos(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).POS)
}

//export glot_config_set_correction
func glot_config_set_correction(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetCorrection)
}

//export glot_config_get_correction
func glot_config_get_correction(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).Correction)
}

//export glot_config_set_with_using_tokens
func glot_config_set_with_using_tokens(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetWithUsingTokens)
}

//export glot_config_get_with_using_tokens
func glot_config_get_with_using_tokens(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).WithUsingTokens)
}

//export glot_config_set_with_using_model
func glot_config_set_with_using_model(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetWithUsingModel)
}

//export glot_config_get_with_using_model
func glot_config_get_with_using_model(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).WithUsingModel)
}

//export glot_config_set_with_commentout
func glot_config_set_with_commentout(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetWithCommentout)
}

//export glot_config_get_with_commentout
func glot_config_get_with_commentout(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).WithCommentout)
}

//export glot_config_set_debug_ocr
func glot_config_set_debug_ocr(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetDebugOCR)
}

//export glot_config_get_debug_ocr
func glot_config_get_debug_ocr(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).DebugOCR)
}

//export glot_config_set_verbose
func glot_config_set_verbose(config C.uintptr_t, value C.bool) C.bool {
	return configSetFlag(config, value, (*glot.Config).SetVerbose)
}

//export glot_config_get_verbose
func glot_config_get_verbose(config C.uintptr_t) C.bool {
	return configGetFlag(config, (*glot.Config).Verbose)
}

//export glot_config_set_directory_translation_threads
func glot_config_set_directory_translation_threads(config C.uintptr_t, value C.int32_t) C.bool {
	cfg := borrowConfig(config)
	if cfg == nil {
		return false
	}
	cfg.SetDirectoryTranslationThreads(int(value))
	return true
}

//export glot_config_get_directory_translation_threads
func glot_config_get_directory_translation_threads(config C.uintptr_t) C.int32_t {
	cfg := borrowConfig(config)
	if cfg == nil {
		return -1
	}
	value, ok := cfg.DirectoryTranslationThreads()
	if !ok {
		return -1
	}
	return C.int32_t(value)
}

//export glot_config_clear_ignore_translation_files
func glot_config_clear_ignore_translation_files(config C.uintptr_t) C.bool {
	cfg := borrowConfig(config)
	if cfg == nil {
		return false
	}
	cfg.ClearIgnoreTranslationFiles()
	return true
}

//export glot_config_add_ignore_translation_file
func glot_config_add_ignore_translation_file(config C.uintptr_t, pattern *C.char) C.bool {
	cfg := borrowConfig(config)
	if cfg == nil {
		return false
	}
	if pattern == nil {
		storeError(errors.New("pattern is null"))
		return false
	}
	cfg.AddIgnoreTranslationFile(C.GoString(pattern))
	return true
}

//export glot_config_ignore_translation_file_len
func glot_config_ignore_translation_file_len(config C.uintptr_t) C.size_t {
	cfg := borrowConfig(config)
	if cfg == nil {
		return 0
	}
	return C.size_t(cfg.IgnoreTranslationFileCount())
}

//export glot_config_get_ignore_translation_file
func glot_config_get_ignore_translation_file(config C.uintptr_t, index C.size_t) *C.char {
	cfg := borrowConfig(config)
	if cfg == nil {
		return nil
	}
	value, ok := cfg.IgnoreTranslationFileAt(int(index))
	if !ok {
		storeError(fmt.Errorf("ignore pattern index %d out of range", int(index)))
		return nil
	}
	return ownedString(value)
}
