package entries

import "time"

type EntryType string

const (
	TypeMovie  EntryType = "MOVIE"
	TypeTVShow EntryType = "TV_SHOW"
)

func (t EntryType) Valid() bool {
	return t == TypeMovie || t == TypeTVShow
}

// Entry is the single tracked record: one movie or one TV show.
type Entry struct {
	ID    uint      `gorm:"primaryKey" json:"id"`
	Type  EntryType `gorm:"type:varchar(16);not null;index" json:"type"`
	Title string    `gorm:"not null" json:"title"`
	Year  int       `gorm:"not null" json:"year"`

	Director *string `json:"director"`
	// Budget stays a decimal string on both sides of the wire so large
	// amounts never round through a float.
	Budget   *string `gorm:"type:decimal(15,2)" json:"budget"`
	Location *string `json:"location"`
	Duration *int    `json:"duration"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
