// Package settingsfile owns the on-disk TOML representation of engine
// settings: the layered search path, merge rules, serialization, and the
// embedded sample file.
//
// Files are decoded into pointer-typed fields so a later layer only
// overrides what it actually sets. The formal-style table merges per key;
// the system language list replaces wholesale.
package settingsfile
