//go:build js && wasm
// +build js,wasm

package gclipboard

import (
	"errors"
	"syscall/js"
)

var backend = clipboardBackend{read: browserRead, write: browserWrite}

// await blocks on a JS promise
func await(promise js.Value) (js.Value, error) {
	type res struct {
		v   js.Value
		err error
	}
	ch := make(chan res, 1)
	then := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- res{v: args[0]}
		return nil
	})
	catch := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		msg := "clipboard request rejected"
		if len(args) > 0 {
			msg = args[0].String()
		}
		ch <- res{err: errors.New(msg)}
		return nil
	})
	defer then.Release()
	defer catch.Release()

	promise.Call("then", then).Call("catch", catch)
	r := <-ch
	return r.v, r.err
}

func navigatorClipboard() (js.Value, error) {
	nav := js.Global().Get("navigator")
	if !nav.Truthy() || !nav.Get("clipboard").Truthy() {
		return js.Undefined(), errors.New("navigator.clipboard not available")
	}
	return nav.Get("clipboard"), nil
}

func browserRead() (string, error) {
	cb, err := navigatorClipboard()
	if err != nil {
		return "", err
	}
	v, err := await(cb.Call("readText"))
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func browserWrite(text string) error {
	cb, err := navigatorClipboard()
	if err != nil {
		return err
	}
	_, err = await(cb.Call("writeText", text))
	return err
}
