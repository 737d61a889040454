package validator

import (
	"regexp"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var loginRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

func ValidateCreateUser(login, password, displayName string) ValidationErrors {
	errs := make(ValidationErrors)

	login = strings.TrimSpace(login)
	if login == "" {
		errs.Add("login", "Login is required")
	} else if len(login) > 50 {
		errs.Add("login", "Login is too long")
	} else if !loginRegex.MatchString(login) {
		errs.Add("login", "Login can only contain letters, numbers, _ . and -")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	if len(displayName) > 100 {
		errs.Add("name", "Name is too long")
	}

	return errs
}

func ValidateOpenSession(login, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(login) == "" {
		errs.Add("login", "Login is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateCommunity(name, description string) ValidationErrors {
	errs := make(ValidationErrors)

	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", "Community name is required")
	} else if len(name) > 100 {
		errs.Add("name", "Community name is too long")
	}

	if len(description) > 500 {
		errs.Add("description", "Description is too long")
	}

	return errs
}
