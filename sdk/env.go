package sdk

import "encoding/json"

// parseEnv decodes the flat env blob. msg.* keys are lifted into Sender by hand
// because the host keeps them flat next to the tx/block keys.
func parseEnv(envStr string) Env {
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	env.Sender = Sender{
		Address:              Address(stringOf(envMap["msg.sender"])),
		RequiredAuths:        addressesOf(envMap["msg.required_auths"]),
		RequiredPostingAuths: addressesOf(envMap["msg.required_posting_auths"]),
	}
	return env
}

func stringOf(v interface{}) string {
	s, _ := v.(string)
	return s
}

func addressesOf(v interface{}) []Address {
	out := make([]Address, 0)
	list, _ := v.([]interface{})
	for _, auth := range list {
		if addr, ok := auth.(string); ok {
			out = append(out, Address(addr))
		}
	}
	return out
}
