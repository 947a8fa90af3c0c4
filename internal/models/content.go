package models

import "time"

const (
	PublicationTypeArticle     = "article"
	PublicationTypeBook        = "book"
	PublicationTypeBookChapter = "book_chapter"
	PublicationTypeConference  = "conference"
	PublicationTypeMonograph   = "monograph"
	PublicationTypeWorkshop    = "workshop"
)

type Publication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Citation  string    `gorm:"not null" json:"citation"`
	Note      string    `json:"note"`
	DOI       string    `gorm:"column:doi" json:"doi"`
	Type      string    `gorm:"not null;default:article" json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Publication) TableName() string { return "publications" }

type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"not null" json:"category"`
	Date      string    `gorm:"not null" json:"date"`
	Title     string    `gorm:"not null" json:"title"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (News) TableName() string { return "news" }

// AlbumPhoto is stored inside Album.Photos as a JSON array, ordered by the
// Order field.
type AlbumPhoto struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
}

type Album struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `json:"description"`
	CoverImage   string       `json:"coverImage"`
	Photos       []AlbumPhoto `gorm:"serializer:json" json:"photos"`
	Category     string       `gorm:"not null;default:General" json:"category"`
	Date         *time.Time   `json:"date"`
	IsPublished  bool         `gorm:"not null;default:true" json:"isPublished"`
	DisplayOrder int          `gorm:"not null;default:0" json:"order"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (Album) TableName() string { return "albums" }

type Resource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Resource) TableName() string { return "resources" }

// ResearchArea is one card in the homepage research section, stored as JSON.
type ResearchArea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Homepage is a singleton row carrying the editable landing-page copy.
type Homepage struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	HeroTitle       string         `json:"heroTitle"`
	HeroHighlight   string         `json:"heroHighlight"`
	HeroSubtitle    string         `json:"heroSubtitle"`
	AboutTitle      string         `json:"aboutTitle"`
	AboutContent    []string       `gorm:"serializer:json" json:"aboutContent"`
	ResearchTitle   string         `json:"researchTitle"`
	ResearchAreas   []ResearchArea `gorm:"serializer:json" json:"researchAreas"`
	ContactTitle    string         `json:"contactTitle"`
	ContactEmail    string         `json:"contactEmail"`
	ContactLocation []string       `gorm:"serializer:json" json:"contactLocation"`
	PIName          string         `gorm:"column:pi_name" json:"piName"`
	PITitle         string         `gorm:"column:pi_title" json:"piTitle"`
	Department      string         `json:"department"`
	FooterText      string         `json:"footerText"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (Homepage) TableName() string { return "homepage" }

// Setting is a key/value pair for miscellaneous site configuration.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Setting) TableName() string { return "settings" }
