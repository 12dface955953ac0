// Package policy holds the password complexity and email domain rules
// shared by registration, federated profile completion and password reset.
package policy

import (
	"strings"
	"unicode"

	"golang.org/x/net/idna"

	"github.com/dtroode/authgate/internal/model"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
	passwordSymbols  = "!@#$%^&*"
)

// DefaultEmailDomains lists the domains accepted when none are configured.
var DefaultEmailDomains = []string{
	"gmail.com",
	"yahoo.com",
	"outlook.com",
	"hotmail.com",
	"icloud.com",
	"aol.com",
	"protonmail.com",
	"mail.com",
}

// Policy validates passwords and email addresses.
type Policy struct {
	domains map[string]struct{}
}

// New creates a Policy accepting emails in the given domains.
// An empty list means DefaultEmailDomains.
func New(domains []string) *Policy {
	if len(domains) == 0 {
		domains = DefaultEmailDomains
	}
	p := &Policy{domains: make(map[string]struct{}, len(domains))}
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			p.domains[d] = struct{}{}
		}
	}
	return p
}

// ValidatePassword returns a *model.ValidationError listing every rule
// the password breaks, or nil.
func (p *Policy) ValidatePassword(password string) error {
	var (
		problems                   []string
		hasUpper, hasDigit, hasSym bool
	)

	for _, r := range password {
		switch {
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSym = true
		}
	}

	if len([]rune(password)) < minPasswordLength {
		problems = append(problems, "must be at least 8 characters")
	}
	if len(password) > maxPasswordBytes {
		problems = append(problems, "must be at most 72 bytes")
	}
	if !hasUpper {
		problems = append(problems, "must include an uppercase letter")
	}
	if !hasDigit {
		problems = append(problems, "must include a number")
	}
	if !hasSym {
		problems = append(problems, "must include a special character (!@#$%^&*)")
	}

	if len(problems) > 0 {
		return model.NewValidationError("password", problems...)
	}
	return nil
}

// ValidateEmail checks the address shape and that its domain is allowed.
func (p *Policy) ValidateEmail(email string) error {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") || strings.IndexFunc(local, unicode.IsSpace) >= 0 {
		return model.NewValidationError("email", "must be a valid email address")
	}
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return model.NewValidationError("email", "must be a valid email address")
	}
	if _, ok := p.domains[strings.ToLower(ascii)]; !ok {
		return model.NewValidationError("email", "must use a common email domain (gmail.com, yahoo.com, outlook.com, etc.)")
	}
	return nil
}

// RequireFields returns a validation error naming every empty field.
// Pairs are given as name, value, name, value...
func RequireFields(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i]+" is required")
		}
	}
	if len(missing) > 0 {
		return model.NewValidationError("request", missing...)
	}
	return nil
}
