package entities

// Collection is a named, ordered grouping of monsters used by curators
// (team drafts, balance review batches, event rosters)
type Collection struct {
	ID         string
	Name       string
	Note       string
	MonsterIDs []string
	CreatedAt  int64
	UpdatedAt  int64
}

// Contains reports whether the collection already holds the monster
func (c *Collection) Contains(monsterID string) bool {
	for _, id := range c.MonsterIDs {
		if id == monsterID {
			return true
		}
	}
	return false
}
