package models

// Warning describes a partial failure attached to an otherwise successful
// operation, e.g. an orphaned image that could not be deleted.
type Warning struct {
	Operation string `json:"operation"`
	Resource  string `json:"resource"`
	Message   string `json:"message"`
}

// AccountDeletion is the result of deleting an account.
type AccountDeletion struct {
	User     User      `json:"user"`
	Warnings []Warning `json:"-"`
}

// Warning operations.
const (
	// WarningImageDeletion marks an image that stayed on the host after the
	// account no longer references it.
	WarningImageDeletion = "imageDeletion"
)
