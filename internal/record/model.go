package record

import (
	"time"
)

// Match is one archived game. Winner is -1 while the game is unfinished.
type Match struct {
	ID        uint         `gorm:"primarykey"`
	GameID    string       `gorm:"size:36;uniqueIndex"`
	PlayerOne string       `gorm:"size:64"`
	PlayerTwo string       `gorm:"size:64"`
	StartedAt time.Time    `gorm:"index"`
	EndedAt   *time.Time   `gorm:"index"`
	Turns     int          `gorm:"not null"`
	Winner    int          `gorm:"not null"`
	Events    []MatchEvent `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// MatchEvent is one archived game event.
type MatchEvent struct {
	ID       uint   `gorm:"primarykey"`
	MatchID  uint   `gorm:"index"`
	Seq      int    `gorm:"index"`
	Turn     int    `gorm:"not null"`
	Kind     string `gorm:"size:32;index"`
	Actor    int    `gorm:"not null"`
	Subject  int    `gorm:"not null"`
	Layer    string `gorm:"size:8"`
	Cell     int    `gorm:"not null"`
	Unit     string `gorm:"size:32"`
	UnitKind string `gorm:"size:8"`
	Detail   string `gorm:"size:64"`
	Occupied int    `gorm:"not null"`
	Cleared  int    `gorm:"not null"`
	Answer   bool   `gorm:"not null"`
}

// Models lists every table the archive migrates.
var Models = []any{&Match{}, &MatchEvent{}}
