package models

// AlternativeModel is one generated situational phrasing for an item.
// Item references the entry by term value, not by id, so alternatives
// survive entry renames as an independent cache. Records are append-only;
// uniqueness of Text within (Item, Situation) is case-insensitive and
// enforced by the alternatives engine before insert, not by the schema.
type AlternativeModel struct {
	Base
	Item         string `json:"item"          gorm:"size:191;index;not null"`
	Situation    string `json:"situation"     gorm:"size:64;index;not null"`
	Text         string `json:"text"          gorm:"type:text;not null"`
	ModelVersion string `json:"model_version" gorm:"size:128"`

	// Ordinal is the record's position within its insert batch. Rows of
	// one batch share a created_at, so created_at alone cannot reproduce
	// the tone ordering the generator emitted; reads order by
	// (created_at, ordinal).
	Ordinal int `json:"-" gorm:"not null;default:0"`
}

func (AlternativeModel) TableName() string { return "alternatives" }
