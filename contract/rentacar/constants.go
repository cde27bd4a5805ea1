package rentacar

// -----------------------------------------------------------------------------
// Instance Storage Keys
// -----------------------------------------------------------------------------

const (
	// AdminKey holds the address allowed to administer the rental contract.
	AdminKey = "ADMIN"
	// TokenKey holds the fungible token contract used for rental payments.
	TokenKey = "TOKEN"
)
