//go:build !js && !wasm
// +build !js,!wasm

package gclipboard

import "github.com/atotto/clipboard"

var backend = clipboardBackend{
	read:  clipboard.ReadAll,
	write: clipboard.WriteAll,
}
