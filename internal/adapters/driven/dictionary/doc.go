// Package dictionary loads character dictionaries and stroke-meaning tables
// from data files.
//
// Character files are JSON (or YAML) objects keyed by "pronunciation/hanja".
// Field values are loosely typed in the source data: stroke counts may be
// numbers or numeric strings, elements may be English, Hangul or hanja labels.
// Every entry is validated into a domain.CharacterRecord at load time, so the
// engine only ever sees strongly typed records.
//
// Stroke-meaning files are YAML or JSON lists chosen by file extension.
package dictionary
