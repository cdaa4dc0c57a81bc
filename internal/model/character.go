package model

// Character is a snapshot of one ladder character owned by an account.
// Only Rank and CharLevel change after creation.
type Character struct {
	ID          int    `json:"id"`
	AccountName string `json:"accountName"`
	CharName    string `json:"charName"`
	LeagueName  string `json:"leagueName"`
	Rank        int    `json:"rank"`
	CharLevel   int    `json:"charLevel"`
}

// LadderCharacter is the character part of a ladder entry.
type LadderCharacter struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// LadderEntry is one row of an externally sourced ladder, 1 being the
// best rank.
type LadderEntry struct {
	Rank      int             `json:"rank"`
	Character LadderCharacter `json:"character"`
}

// NewCharacter maps a ladder entry onto a Character of the given
// account and league.
func NewCharacter(entry LadderEntry, accountName, leagueName string) Character {
	return Character{
		AccountName: accountName,
		CharName:    entry.Character.Name,
		LeagueName:  leagueName,
		Rank:        entry.Rank,
		CharLevel:   entry.Character.Level,
	}
}
