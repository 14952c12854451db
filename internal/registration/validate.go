package registration

import (
	"regexp"
	"unicode"
)

// Draft is the transient, wizard-local input state. It is the single source
// of truth across all steps and is discarded after submission.
type Draft struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	Skills          []string
	Bio             string
}

// FieldErrors maps input field names to bundle keys; the view resolves them.
type FieldErrors map[string]string

// Roles is the fixed role catalog offered on the profile step.
var Roles = []string{
	"Developer", "Designer", "Product Manager", "Business/Marketing", "Data Scientist",
}

// SkillCatalog is the fixed skill set offered on the profile step.
var SkillCatalog = []string{
	"JavaScript", "React", "Node.js", "Python", "UI/UX Design",
	"Product Management", "Marketing", "Data Science", "DevOps",
}

const (
	minNameLen     = 2
	minPasswordLen = 8
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateAccount gates the account step. Every failing field maps to its
// message key; an empty result permits the transition.
func ValidateAccount(d *Draft) FieldErrors {
	errs := FieldErrors{}

	if len(d.Name) < minNameLen {
		errs["name"] = "name_validation_error"
	}

	if !emailPattern.MatchString(d.Email) {
		errs["email"] = "email_validation_error"
	}

	if !passwordStrongEnough(d.Password) {
		errs["password"] = "password_validation_error"
	}

	if d.Password != d.ConfirmPassword {
		errs["confirmPassword"] = "password_match_error"
	}

	return errs
}

// ValidateProfile gates the profile step: a role and at least one skill, both
// from the fixed catalogs.
func ValidateProfile(d *Draft) FieldErrors {
	errs := FieldErrors{}

	if !contains(Roles, d.Role) {
		errs["role"] = "role_required_error"
	}

	hasSkill := false
	for _, skill := range d.Skills {
		if contains(SkillCatalog, skill) {
			hasSkill = true
			break
		}
	}
	if !hasSkill {
		errs["skills"] = "skills_required_error"
	}

	return errs
}

// passwordStrongEnough requires the minimum length plus an upper-case letter,
// a lower-case letter, and a digit.
func passwordStrongEnough(password string) bool {
	if len(password) < minPasswordLen {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
