package domain

import "time"

// Backup is the full export document produced by the admin surface. Restore
// requires Games, Sales and Settings to be present; Categories travel along
// when the exporter had them.
type Backup struct {
	Games      []Game     `json:"games"`
	Categories []Category `json:"categories,omitempty"`
	Sales      []Order    `json:"sales"`
	Settings   *Settings  `json:"settings"`
	BackupDate time.Time  `json:"backupDate"`
}

// GamesData is the persisted catalog document, matching the seed file shape.
type GamesData struct {
	Games      []Game     `json:"games"`
	Categories []Category `json:"categories"`
	LastUpdate time.Time  `json:"lastUpdate,omitempty"`
}
