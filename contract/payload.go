package main

import (
	"strconv"
	"strings"

	"rent_a_car/sdk"
)

// decodeInitArgs accepts either `admin|token` or {"admin":"..","token":".."} and
// aborts when a field is missing. Only the pipe form is trimmed; JSON strings
// are stored exactly as decoded.
func decodeInitArgs(payload *string) *InitArgs {
	raw := unwrapPayload(payload, "init payload missing")

	var args *InitArgs
	if strings.HasPrefix(raw, "{") {
		parsed, err := decodeInitArgsJSON(raw)
		if err != nil {
			sdk.Abort("invalid init payload: " + err.Error())
		}
		args = parsed
	} else {
		parts := strings.Split(raw, "|")
		if len(parts) != 2 {
			sdk.Abort("init payload requires admin|token")
		}
		args = &InitArgs{
			Admin: strings.TrimSpace(parts[0]),
			Token: strings.TrimSpace(parts[1]),
		}
	}

	if args.Admin == "" {
		sdk.Abort("admin address required")
	}
	if args.Token == "" {
		sdk.Abort("token address required")
	}
	return args
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				raw = strings.TrimSpace(unquoted)
			} else {
				raw = strings.TrimSpace(raw[1 : len(raw)-1])
			}
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}
