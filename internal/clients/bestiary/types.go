package bestiary

// MonsterRef represents a monster list entry from external source
type MonsterRef struct {
	Key  string
	Name string
}

// MonsterData represents monster information from external source
type MonsterData struct {
	Key          string
	Name         string
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}
