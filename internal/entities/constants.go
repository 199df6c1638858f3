package entities

// Role label codes
const (
	RoleAttacker   = "attacker"
	RoleController = "controller"
	RoleSupport    = "support"
	RoleTank       = "tank"
	RoleGeneralist = "generalist"
)

// Roles lists every valid role label code
var Roles = []string{
	RoleAttacker,
	RoleController,
	RoleSupport,
	RoleTank,
	RoleGeneralist,
}

var roleDisplays = map[string]string{
	RoleAttacker:   "输出",
	RoleController: "控制",
	RoleSupport:    "辅助",
	RoleTank:       "坦克",
	RoleGeneralist: "全能",
}

// RoleDisplay returns the localized display name for a role code.
// Unknown codes are returned unchanged.
func RoleDisplay(role string) string {
	if d, ok := roleDisplays[role]; ok {
		return d
	}
	return role
}

// IsValidRole reports whether role is a recognized role label code
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Skill kind codes, normalized from the free-text kinds found in source data
const (
	SkillKindPhysical = "physical"
	SkillKindMagic    = "magic"
	SkillKindStatus   = "status"
)

var skillKindAliases = map[string]string{
	"physical": SkillKindPhysical,
	"物理":       SkillKindPhysical,
	"物理系":      SkillKindPhysical,
	"magic":    SkillKindMagic,
	"法术":       SkillKindMagic,
	"法术系":      SkillKindMagic,
	"魔法":       SkillKindMagic,
	"status":   SkillKindStatus,
	"属性":       SkillKindStatus,
	"变化":       SkillKindStatus,
	"特殊":       SkillKindStatus,
}

// NormalizeSkillKind maps a free-text skill kind to one of the SkillKind
// codes. Unrecognized kinds normalize to "" (unknown).
func NormalizeSkillKind(kind string) string {
	if k, ok := skillKindAliases[kind]; ok {
		return k
	}
	return ""
}
