package models

// Role selects which profile slot and navigation surface are active.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Language is the persisted UI language preference.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageMarathi Language = "mr"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageMarathi:
		return true
	}
	return false
}

// Credential is one row of the registration table. Passwords are stored and
// compared in plaintext. TODO: hash with bcrypt once existing records can be
// migrated.
type Credential struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// Session is the persisted authentication state. It survives restarts until
// an explicit logout.
type Session struct {
	Role Role `json:"role"`
}
