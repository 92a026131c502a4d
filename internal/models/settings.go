package models

// Setting is one opaque key/value pair (titles, stadium lists, stream URLs).
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value" gorm:"type:text"`
}

// Settings is the key/value view returned to clients.
type Settings map[string]string

// DefaultSettings are restored by a full wipe.
func DefaultSettings() Settings {
	return Settings{
		"title":    "Scorebook",
		"stadiums": "[]",
	}
}
