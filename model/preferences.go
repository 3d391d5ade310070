package model

import "time"

// Preferences holds the per-user UI settings that older clients kept in
// localStorage. Owning them server-side gives every open view of the same
// account one source of truth; changes fan out over the broadcast channel.
type Preferences struct {
	UserID          string    `bson:"user_id" json:"user_id"`
	Theme           string    `bson:"theme" json:"theme"`
	BuddyName       string    `bson:"buddy_name" json:"buddy_name"`
	BuddyAppearance string    `bson:"buddy_appearance" json:"buddy_appearance"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultPreferences are applied when a user has never saved any, and when
// an account switch is detected client-side.
func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:          userID,
		Theme:           "light",
		BuddyName:       "Buddy",
		BuddyAppearance: "cat",
	}
}
