//go:build wasm

package sdk

//go:wasmimport sdk console.log
func log(s *string) *string

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("ci|admin:hive:alice")
func Log(s string) {
	log(&s)
}

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

// Abort stops execution immediately and surfaces the message to the chain.
// Example payload: sdk.Abort("payload missing")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// StateSetObject stores a key/value string pair in instance storage.
// Example payload: sdk.StateSetObject("ADMIN", "hive:alice")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("TOKEN")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to Env.
func GetEnv() Env {
	return parseEnv(*getEnv(nil))
}
