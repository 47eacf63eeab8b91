// SPDX-License-Identifier: MPL-2.0

// Package ocrlang holds the table of OCR languages supported by the bundled
// image's text-recognition engine, mapping display names to tesseract
// language codes.
//
// The table is static data shipped with the binary, kept as embedded JSON
// rather than inline literals so it can be regenerated without touching
// code.
package ocrlang

import (
	_ "embed"
	"encoding/json"
	"slices"
	"sync"
)

//go:embed languages.json
var languagesJSON []byte

// table parses the embedded language data once on first use. The embedded
// JSON is validated at build time by the package tests, so a parse failure
// here means a broken build, not a runtime condition worth recovering from.
var table = sync.OnceValue(func() map[string]string {
	var m map[string]string
	if err := json.Unmarshal(languagesJSON, &m); err != nil {
		panic("ocrlang: embedded languages.json is invalid: " + err.Error())
	}
	return m
})

// Code returns the tesseract language code for a display name.
func Code(name string) (string, bool) {
	code, ok := table()[name]
	return code, ok
}

// Names returns all display names in sorted order.
func Names() []string {
	m := table()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
