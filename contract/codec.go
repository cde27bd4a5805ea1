package main

import (
	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// InitArgs is the payload of construct and initialize.
type InitArgs struct {
	Admin string `json:"admin"`
	Token string `json:"token"`
}

// MarshalTinyJSON writes {"admin":...,"token":...}.
func (v InitArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"admin":`)
	out.String(v.Admin)
	out.RawString(`,"token":`)
	out.String(v.Token)
	out.RawByte('}')
}

// UnmarshalTinyJSON reads the object form, ignoring unknown keys.
func (v *InitArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "admin":
			v.Admin = in.String()
		case "token":
			v.Token = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// encodeInitArgs renders args as the JSON object payload.
func encodeInitArgs(args InitArgs) string {
	b, err := tinyjson.Marshal(args)
	if err != nil {
		return ""
	}
	return string(b)
}

// decodeInitArgsJSON parses the JSON object payload.
func decodeInitArgsJSON(raw string) (*InitArgs, error) {
	var args InitArgs
	if err := tinyjson.Unmarshal([]byte(raw), &args); err != nil {
		return nil, err
	}
	return &args, nil
}
