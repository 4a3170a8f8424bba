//go:build js && wasm

package engine

import "syscall/js"

var uint8ArrayCtor = js.Global().Get("Uint8Array")
