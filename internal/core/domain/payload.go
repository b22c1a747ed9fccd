package domain

import "strings"

// Webhook payloads arrive with several historical field-name spellings
// depending on which form plugin sent them. Alias precedence is declared
// data: for each canonical field, the first present source key wins.
//
// "Phone" (capitalized) is asymmetric with the hyphenated aliases; it is a
// quirk of one historical source form and is preserved exactly, not
// generalized to case-insensitive matching.
var fieldAliases = map[string][]string{
	"first_name": {"first_name", "first-name"},
	"last_name":  {"last_name", "last-name"},
	"name":       {"name"},
	"email":      {"email", "your-email"},
	"phone":      {"phone", "Phone"},
}

// WebhookLeadInput is the alias-resolved, whitespace-trimmed shape of a raw
// webhook payload. Email is always set (possibly empty) so downstream
// validation has a single check.
type WebhookLeadInput struct {
	FirstName string
	LastName  string
	Name      string
	Email     string
	Phone     string
}

// LeadFields is the canonical lead shape ready for persistence.
type LeadFields struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// NormalizeWebhookPayload maps a raw field mapping (string keys, string or
// absent values) to a WebhookLeadInput using the alias table. It never fails:
// every input produces a valid output structure.
func NormalizeWebhookPayload(fields map[string]string) WebhookLeadInput {
	return WebhookLeadInput{
		FirstName: resolveAlias(fields, "first_name"),
		LastName:  resolveAlias(fields, "last_name"),
		Name:      resolveAlias(fields, "name"),
		Email:     resolveAlias(fields, "email"),
		Phone:     resolveAlias(fields, "phone"),
	}
}

func resolveAlias(fields map[string]string, canonical string) string {
	for _, key := range fieldAliases[canonical] {
		if v, ok := fields[key]; ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Resolve produces the canonical lead shape. When both name parts are empty
// and a combined name is present, the name is split on runs of whitespace:
// the first token becomes the first name, the rest rejoined with single
// spaces become the last name. An undeterminable first name falls back to
// PlaceholderFirstName; all other fields default to the empty string.
func (in WebhookLeadInput) Resolve() LeadFields {
	first := in.FirstName
	last := in.LastName

	if first == "" && last == "" && in.Name != "" {
		parts := strings.Fields(in.Name)
		if len(parts) > 0 {
			first = parts[0]
			last = strings.Join(parts[1:], " ")
		}
	}

	if first == "" {
		first = PlaceholderFirstName
	}

	return LeadFields{
		FirstName: first,
		LastName:  last,
		Email:     in.Email,
		Phone:     in.Phone,
	}
}
