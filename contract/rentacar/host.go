package rentacar

import "rent_a_car/sdk"

// Logger receives the terse event lines the contract emits.
type Logger interface {
	Log(msg string)
}

// ENV exposes the bits of the execution environment we read.
type ENV interface {
	GetEnv() sdk.Env
}

// HostLogger forwards events to the chain console.
type HostLogger struct{}

func (HostLogger) Log(msg string) { sdk.Log(msg) }

// HostENV reads the env blob straight from the host.
type HostENV struct{}

func (HostENV) GetEnv() sdk.Env { return sdk.GetEnv() }

// StaticENV hands out a fixed sender, used where no chain env exists.
type StaticENV struct {
	Sender sdk.Address
}

func (s StaticENV) GetEnv() sdk.Env {
	return sdk.Env{Sender: sdk.Sender{Address: s.Sender}}
}
