package models

// ProfileKey is the well-known key of the single profile row.
const ProfileKey = "docgrow:userName"

// UserProfile stores the clinician's display name, the only durable value in
// the system. A single row keyed by ProfileKey is read once at startup and
// rewritten on save.
type UserProfile struct {
	BaseModel
	Key         string `gorm:"size:64;uniqueIndex" json:"key"`
	DisplayName string `gorm:"size:120" json:"displayName"`
}
