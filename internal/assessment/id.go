package assessment

import "github.com/oklog/ulid/v2"

// HazardIDPrefix marks generated hazard identifiers.
const HazardIDPrefix = "HZ-"

// NewID generates a unique hazard identifier. ULIDs combine a millisecond
// timestamp with random entropy, so bulk template loads that create many
// hazards within the same second cannot collide.
func NewID() string {
	return HazardIDPrefix + ulid.Make().String()
}
