package pokemon

import "time"

// Member is a snapshot of a Pokémon placed in a team slot. It is not a live
// reference: types and stats are those captured when the member was added.
type Member struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	SpriteURL string         `json:"sprite,omitempty"`
	Types     []Type         `json:"types"`
	Stats     map[string]int `json:"stats,omitempty"`
}

// Team is an ordered set of six slots; a nil slot is empty
type Team [TeamSize]*Member

// Slot pairs a member with its position in the team
type Slot struct {
	Index  int
	Member *Member
}

// Members returns the non-empty slots in slot order
func (t *Team) Members() []Slot {
	slots := make([]Slot, 0, TeamSize)
	for i, m := range t {
		if m != nil {
			slots = append(slots, Slot{Index: i, Member: m})
		}
	}
	return slots
}

// Len returns the number of filled slots
func (t *Team) Len() int {
	n := 0
	for _, m := range t {
		if m != nil {
			n++
		}
	}
	return n
}

// TeamFromSlice builds a team from up to six entries, nils kept as empty slots
func TeamFromSlice(members []*Member) Team {
	var t Team
	for i := 0; i < len(members) && i < TeamSize; i++ {
		t[i] = members[i]
	}
	return t
}

// TeamRecord is a persisted team snapshot owned by a user
type TeamRecord struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Pokemon    Team       `json:"pokemon"`
	Generation Generation `json:"generation"`
	CreatedAt  time.Time  `json:"created_at"`
}
