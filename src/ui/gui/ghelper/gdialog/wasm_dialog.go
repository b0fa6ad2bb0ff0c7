//go:build js && wasm
// +build js,wasm

package gdialog

import "errors"

type Result struct {
	Path string
	Name string
	Data []byte
}

var errUnsupported = errors.New("file dialog not available in the browser")

func OpenFile(title string) (Result, error) {
	return Result{}, errUnsupported
}

func IsCancelled(err error) bool {
	return false
}
