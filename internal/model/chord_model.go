package model

// Symbols and scale names use the C collation so that ORDER BY label sorts
// byte-wise, like the in-memory corpus.
type Chord struct {
	Symbol    string      `gorm:"type:varchar(32) COLLATE \"C\";primaryKey"`
	RootNote  string      `gorm:"column:root_note;type:varchar(2);primaryKey"`
	Name      string      `gorm:"type:varchar(128);not null"`
	Category  string      `gorm:"type:varchar(16);not null;index"`
	TriadBase *string     `gorm:"column:triad_base;type:varchar(32)"`
	Notes     []ChordNote `gorm:"foreignKey:ChordSymbol,RootNote;references:Symbol,RootNote;constraint:OnDelete:CASCADE"`
}

func (Chord) TableName() string {
	return "chords"
}

type ChordNote struct {
	ChordSymbol string `gorm:"column:chord_symbol;type:varchar(32) COLLATE \"C\";primaryKey"`
	RootNote    string `gorm:"column:root_note;type:varchar(2);primaryKey"`
	Note        string `gorm:"type:varchar(2);primaryKey;index"`
}

func (ChordNote) TableName() string {
	return "chord_has_note"
}

// ChordAggregate is the scan target of grouped chord queries.
type ChordAggregate struct {
	Symbol    string
	Name      string
	RootNote  string
	Category  string
	TriadBase *string
	Notes     string
}
