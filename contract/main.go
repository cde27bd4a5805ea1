////////////////////////////////////////////////////////////////////////////////
// Rent-a-Car: car rental contract skeleton for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"rent_a_car/contract/rentacar"
	"rent_a_car/sdk"
)

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// construct stores admin and token at deployment.
// Payload: "admin|token" or {"admin":"...","token":"..."}
func construct(payload *string) *string {
	args := decodeInitArgs(payload)
	rentacar.NewHost().Construct(sdk.Address(args.Admin), sdk.Address(args.Token))
	return strptr("constructed")
}

// initialize repeats the construct writes. Anyone can call it and the
// previous admin and token are overwritten.
// Payload: "admin|token" or {"admin":"...","token":"..."}
func initialize(payload *string) *string {
	args := decodeInitArgs(payload)
	rentacar.NewHost().Initialize(sdk.Address(args.Admin), sdk.Address(args.Token))
	return strptr("initialized")
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

func adminGet(_ *string) *string {
	admin, ok := rentacar.NewHost().Admin()
	if !ok {
		sdk.Abort("not initialized")
	}
	return strptr(admin.String())
}

func tokenGet(_ *string) *string {
	token, ok := rentacar.NewHost().Token()
	if !ok {
		sdk.Abort("not initialized")
	}
	return strptr(token.String())
}

// Convenience helper
func strptr(s string) *string { return &s }
