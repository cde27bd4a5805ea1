package rentacar

import "rent_a_car/sdk"

// State is the instance storage the contract writes to.
type State interface {
	Set(key, value string)
	Get(key string) *string
}

// setIfChanged skips the write when the key already holds value, so repeated
// initialization with the same addresses does not burn storage fees.
func setIfChanged(state State, key, value string) {
	if existing := state.Get(key); existing != nil && *existing == value {
		return
	}
	state.Set(key, value)
}

// HostState routes every call to the host's db.* imports.
type HostState struct{}

func (HostState) Set(key, value string) { sdk.StateSetObject(key, value) }

func (HostState) Get(key string) *string { return sdk.StateGetObject(key) }

// MemState keeps instance storage in a plain map. Handy for tests and dry runs.
type MemState struct {
	db map[string]string
}

func NewMemState() *MemState {
	return &MemState{db: make(map[string]string)}
}

func (m *MemState) Set(key, value string) {
	m.db[key] = value
}

func (m *MemState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

// Len reports how many keys are stored.
func (m *MemState) Len() int {
	return len(m.db)
}
