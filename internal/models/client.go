package models

// Client represents a customer of the distribution business.
//
// Clients are never deleted: deactivating a client flips IsActive so the
// client disappears from active listings while its distributions and
// payments stay queryable.
type Client struct {
	// ID is the row identifier assigned by the store.
	ID int64

	// Name is the display name of the client. Required.
	Name string

	// Address is the delivery address. Optional.
	Address string

	// Phone is the contact number. Optional.
	Phone string

	// CreatedDate is the calendar date the client was added.
	CreatedDate string

	// IsActive is false once the client has been deactivated.
	IsActive bool
}
