package customer

// GuestID is the sentinel customer identifier used for unauthenticated
// checkouts.
const GuestID = "guest"

// Profile is the stored customer record.
type Profile struct {
	CustomerID string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// UpsertStatus describes what an upsert did.
type UpsertStatus string

const (
	UpsertCreated  UpsertStatus = "created"
	UpsertUpdated  UpsertStatus = "updated"
	UpsertNoChange UpsertStatus = "no_change"
)

// UpsertResult is the upsert outcome plus the stored record.
type UpsertResult struct {
	Status  UpsertStatus `json:"status"`
	Profile Profile      `json:"customer"`
}
