// Package rentacar holds the car rental contract logic, independent of how the
// host delivers payloads.
package rentacar

import "rent_a_car/sdk"

// Contract binds the rental logic to one instance storage.
type Contract struct {
	state  State
	logger Logger
	env    ENV
}

// New wires a contract to its storage, event sink and env source.
func New(state State, logger Logger, env ENV) *Contract {
	return &Contract{
		state:  state,
		logger: logger,
		env:    env,
	}
}

// NewHost returns a contract backed by the running host.
func NewHost() *Contract {
	return New(HostState{}, HostLogger{}, HostENV{})
}

// Construct runs once at deployment and records admin and token.
func (c *Contract) Construct(admin sdk.Address, token sdk.Address) {
	c.store(admin, token)
	c.emitConstructedEvent(c.sender(), admin.String(), token.String())
}

// Initialize performs the same writes as Construct at any later time.
// Prior values are overwritten and the caller is not checked against the
// stored admin.
func (c *Contract) Initialize(admin sdk.Address, token sdk.Address) {
	c.store(admin, token)
	c.emitInitializedEvent(c.sender(), admin.String(), token.String())
}

// Admin returns the stored admin address, false if nothing was written yet.
func (c *Contract) Admin() (sdk.Address, bool) {
	return c.load(AdminKey)
}

// Token returns the stored payment token address, false if nothing was written yet.
func (c *Contract) Token() (sdk.Address, bool) {
	return c.load(TokenKey)
}

func (c *Contract) store(admin sdk.Address, token sdk.Address) {
	setIfChanged(c.state, AdminKey, admin.String())
	setIfChanged(c.state, TokenKey, token.String())
}

func (c *Contract) load(key string) (sdk.Address, bool) {
	ptr := c.state.Get(key)
	if ptr == nil {
		return "", false
	}
	return sdk.Address(*ptr), true
}

func (c *Contract) sender() string {
	if c.env == nil {
		return ""
	}
	return c.env.GetEnv().Sender.Address.String()
}
