//go:build js && wasm

// Package browser exposes the page the client runs in: its window and the
// canvas the bootstrap script configured for WebGPU.
package browser

import "syscall/js"

type HTMLWindow struct{ jsValue js.Value }

func Window() HTMLWindow {
	return HTMLWindow{js.Global().Get("window")}
}

func (w HTMLWindow) RequestAnimationFrame(fn js.Func) { w.jsValue.Call("requestAnimationFrame", fn) }

// Param returns the value of the page's getter hook name, or false when the
// page does not define it or it returns no string.
func (w HTMLWindow) Param(name string) (string, bool) {
	fn := w.jsValue.Get(name)
	if fn.Type() != js.TypeFunction {
		return "", false
	}
	v := fn.Invoke()
	if v.Type() != js.TypeString {
		return "", false
	}
	return v.String(), true
}
