package models

// EntryModel is a single vocabulary entry.
//
// PartOfSpeech holds at most one canonical tag; the storage format stays a
// list for compatibility with oracle output that proposes several tags.
// The noun↔article invariant (article set iff part of speech is noun) is
// enforced at the service boundary before any write, never corrected
// silently here.
type EntryModel struct {
	Base
	Term         string      `json:"term"           gorm:"size:191;uniqueIndex;not null"`
	Definition   string      `json:"definition"     gorm:"type:text;not null"`
	Example      string      `json:"example"        gorm:"type:text"`
	Synonyms     string      `json:"synonyms"       gorm:"type:text"`
	PartOfSpeech StringArray `json:"part_of_speech" gorm:"type:json"`
	Article      string      `json:"article"        gorm:"size:8"`
}

func (EntryModel) TableName() string { return "entries" }
