package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// CheckIn is one committed daily check-in. It is created once and never mutated.
type CheckIn struct {
	ID          int64     // Storage insertion sequence, used as ranking tiebreak.
	UserID      string    // References User.ID.
	Date        time.Time // Calendar date (see CivilDate), no time component.
	CheckInTime time.Time // Completion instant in UTC.
	Location    orb.Point // Submitted position, [lng, lat].
	Photo       string    // Opaque photo payload.
}

// CheckInEntry is a check-in joined with the display fields of its owner.
// Photo is empty when the query omitted it.
type CheckInEntry struct {
	CheckInID   int64
	UserID      string
	Date        time.Time
	CheckInTime time.Time
	UserName    string
	UserPicture string
	Photo       string
}
