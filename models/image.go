package models

// Image is a reference to a file held by the external image host.
type Image struct {
	// URL is the public address of the image.
	URL string `json:"url,omitempty"`

	// PublicID is the host-side key used to delete the image.
	PublicID string `json:"publicId,omitempty"`
}

// IsZero reports whether no image is referenced.
func (i Image) IsZero() bool {
	return i.URL == "" && i.PublicID == ""
}

// Image host deletion results that count as a successful removal.
const (
	DeletionResultOK       = "ok"
	DeletionResultNotFound = "not found"
)

// DeletionResult is the image host's answer to a delete call.
type DeletionResult struct {
	Result string `json:"result"`
}

// Deleted reports whether the image is gone from the host.
func (r DeletionResult) Deleted() bool {
	return r.Result == DeletionResultOK || r.Result == DeletionResultNotFound
}

// ImageSlot names which profile image an operation targets.
type ImageSlot string

const (
	ImageSlotAvatar ImageSlot = "avatar"
	ImageSlotCover  ImageSlot = "coverImage"
)

// SwapState is the progress marker of an image replacement.
type SwapState string

const (
	// SwapStateUploaded means the new image exists on the host but the
	// user record still points to the old one.
	SwapStateUploaded SwapState = "uploaded"
	// SwapStateSwapped means the user record points to the new image and
	// the old one may still exist on the host.
	SwapStateSwapped SwapState = "swapped"
	// SwapStateCleaned means the old image is gone (or there was none).
	SwapStateCleaned SwapState = "cleaned"
)

// ImageSwap is the result of replacing a profile image.
type ImageSwap struct {
	User  User      `json:"user"`
	Slot  ImageSlot `json:"slot"`
	State SwapState `json:"state"`

	// Warnings travel in the response envelope, not in the payload.
	Warnings []Warning `json:"-"`
}
