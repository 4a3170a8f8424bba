//go:build js && wasm

package main

import (
	"log"
	"syscall/js"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hulkholden/webgpu-lessons/client/browser"
	"github.com/hulkholden/webgpu-lessons/client/engine"
	"github.com/hulkholden/webgpu-lessons/client/examples/indexbuffer"
	"github.com/hulkholden/webgpu-lessons/client/examples/mipmaps"
	"github.com/hulkholden/webgpu-lessons/client/examples/orthographic"
	"github.com/hulkholden/webgpu-lessons/client/examples/perspective"
	"github.com/hulkholden/webgpu-lessons/client/examples/storagebuffer"
	"github.com/hulkholden/webgpu-lessons/client/examples/texture"
	"github.com/hulkholden/webgpu-lessons/client/examples/transform"
	"github.com/hulkholden/webgpu-lessons/client/examples/triangle"
	"github.com/hulkholden/webgpu-lessons/common/gpu"
	"github.com/mokiat/wasmgpu"
)

type runFunc func(env engine.Env) error

var examples = map[string]runFunc{
	"triangle":      triangle.Run,
	"storagebuffer": storagebuffer.Run,
	"indexbuffer":   indexbuffer.Run,
	"texture":       texture.Run,
	"mipmap":        mipmaps.Run,
	"transform":     transform.Run,
	"orthographic":  orthographic.Run,
	"perspective":   perspective.Run,
}

// waitForExports waits until the JS which initializes the globals has finished running.
func waitForExports() {
	delay := 100 * time.Millisecond
	for {
		if fn := js.Global().Get("getContext"); !fn.IsUndefined() {
			return
		}
		log.Printf("getContext is still undefined")
		time.Sleep(delay)
		delay = min(2*delay, 2*time.Second)
	}
}

func showError(msg string) {
	if fn := js.Global().Get("showError"); !fn.IsUndefined() {
		fn.Invoke(msg)
	}
}

func main() {
	log.Println("Started client!")

	waitForExports()

	jsDevice := js.Global().Call("getDevice")
	device := wgpu.NewDevice(jsDevice)
	env := engine.Env{
		Device:  wasmgpu.NewDevice(jsDevice),
		Context: wasmgpu.NewCanvasContext(js.Global().Call("getContext")),
		GPU:     gpu.Wrap(&device),
		Canvas:  browser.CurrentCanvas(),
	}

	const defaultExample = "triangle"
	example := defaultExample
	if jsExample := js.Global().Call("getExample"); !jsExample.IsNull() {
		example = jsExample.String()
	}
	run, ok := examples[example]
	if !ok {
		log.Printf("unknown example %q, running %q", example, defaultExample)
		run = examples[defaultExample]
	}
	if err := run(env); err != nil {
		log.Printf("running %q failed: %v", example, err)
		showError("Run error: " + err.Error())
	}

	<-make(chan bool)
}
