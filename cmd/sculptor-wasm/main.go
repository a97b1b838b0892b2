//go:build js && wasm

// Command sculptor-wasm exposes the transforms to JavaScript as the
// SignalLib global:
//
//	SignalLib.DigitalToDigital("1010", SignalLib.LineCoding.AMI)
//	SignalLib.AnalogToDigitalPCM(2, 1, {sampling_rate: 20, quantization_levels: 8})
package main

import (
	"syscall/js"

	"github.com/toprakmurat/SignalSculptor/internal/binding"
)

const globalName = "SignalLib"

func main() {
	lib := make(map[string]any, len(binding.Exports)+3)
	for name, fn := range binding.Exports {
		lib[name] = js.FuncOf(func(_ js.Value, args []js.Value) any {
			return fn(fromJS(args))
		})
	}
	for name, table := range binding.Enums() {
		lib[name] = table
	}

	js.Global().Set(globalName, js.ValueOf(lib))

	// Keep the exported functions alive.
	select {}
}

// fromJS converts call arguments to the plain values binding expects.
func fromJS(args []js.Value) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = value(a)
	}
	return out
}

func value(v js.Value) any {
	switch v.Type() {
	case js.TypeNumber:
		return v.Float()
	case js.TypeString:
		return v.String()
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeObject:
		keys := js.Global().Get("Object").Call("keys", v)
		m := make(map[string]any, keys.Length())
		for i := range keys.Length() {
			k := keys.Index(i).String()
			m[k] = value(v.Get(k))
		}
		return m
	default:
		return nil
	}
}
