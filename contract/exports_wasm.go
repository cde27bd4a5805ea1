//go:build wasm

package main

//go:wasmexport construct
func Construct(payload *string) *string {
	return construct(payload)
}

//go:wasmexport initialize
func Initialize(payload *string) *string {
	return initialize(payload)
}

//go:wasmexport admin_get
func AdminGet(payload *string) *string {
	return adminGet(payload)
}

//go:wasmexport token_get
func TokenGet(payload *string) *string {
	return tokenGet(payload)
}
