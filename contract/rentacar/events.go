package rentacar

import "fmt"

// emitConstructedEvent logs the deploy-time write so indexers pick up the first admin.
func (c *Contract) emitConstructedEvent(by string, admin string, token string) {
	c.logger.Log(fmt.Sprintf(
		"ci|by:%s|admin:%s|token:%s",
		by,
		admin,
		token,
	))
}

// emitInitializedEvent is the same line for later re-initialization, so overwrites are traceable.
func (c *Contract) emitInitializedEvent(by string, admin string, token string) {
	c.logger.Log(fmt.Sprintf(
		"in|by:%s|admin:%s|token:%s",
		by,
		admin,
		token,
	))
}
