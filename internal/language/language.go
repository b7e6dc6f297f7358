package language

import (
	"strings"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
	{"tr", "tur", "", "Turkish", []string{"turkish"}},
	{"vi", "vie", "", "Vietnamese", []string{"vietnamese"}},
	{"th", "tha", "", "Thai", []string{"thai"}},
	{"id", "ind", "", "Indonesian", []string{"indonesian"}},
	{"uk", "ukr", "", "Ukrainian", []string{"ukrainian"}},
	{"cs", "ces", "cze", "Czech", []string{"czech"}},
	{"el", "ell", "gre", "Greek", []string{"greek"}},
	{"he", "heb", "", "Hebrew", []string{"hebrew"}},
	{"ro", "ron", "rum", "Romanian", []string{"romanian"}},
	{"hu", "hun", "", "Hungarian", []string{"hungarian"}},
	{"bg", "bul", "", "Bulgarian", []string{"bulgarian"}},
	{"ms", "msa", "may", "Malay", []string{"malay"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// splitVariant separates a script-variant suffix ("zh-hans") from its base
// code. Only hans/hant suffixes on a Chinese base are recognized.
func splitVariant(code string) (base, variant string, ok bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	idx := strings.LastIndexAny(code, "-_")
	if idx <= 0 || idx == len(code)-1 {
		return "", "", false
	}
	base, variant = code[:idx], code[idx+1:]
	if variant != "hans" && variant != "hant" {
		return "", "", false
	}
	e := lookup(base)
	if e == nil || e.code2 != "zh" {
		return "", "", false
	}
	return base, variant, true
}

// IsValid reports whether code names a language the engine can translate
// to or from: an ISO 639-1/2 code, a full language word, or a Chinese
// script variant such as "zh-hans" or "zho-hant".
func IsValid(code string) bool {
	if lookup(code) != nil {
		return true
	}
	_, _, ok := splitVariant(code)
	return ok
}

// IsValidSource reports whether code is acceptable as a source language.
// "auto" requests source detection and is valid only here.
func IsValidSource(code string) bool {
	if strings.EqualFold(strings.TrimSpace(code), "auto") {
		return true
	}
	return IsValid(code)
}

// DisplayName returns a human-readable name for any recognized code.
// Unrecognized codes fall back to the x/text display data, then to the
// uppercased code itself. Empty input yields "Unknown".
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	if _, variant, ok := splitVariant(trimmed); ok {
		switch variant {
		case "hans":
			return "Chinese (Simplified)"
		default:
			return "Chinese (Traditional)"
		}
	}
	if e := lookup(trimmed); e != nil {
		return e.display
	}
	if tag, err := xlang.Parse(trimmed); err == nil {
		if name := display.English.Tags().Name(tag); name != "" {
			return name
		}
	}
	if len(trimmed) <= 3 {
		return strings.ToUpper(trimmed)
	}
	return cases.Title(xlang.Und).String(trimmed)
}

// Normalize lowercases and trims a code for storage and comparison.
// Unset or blank codes normalize to the empty string.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
