package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWebhookPayload(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   WebhookLeadInput
	}{
		{
			name: "canonical keys",
			fields: map[string]string{
				"first_name": "Jane",
				"last_name":  "Public",
				"email":      "jane@example.com",
				"phone":      "555-0100",
			},
			want: WebhookLeadInput{FirstName: "Jane", LastName: "Public", Email: "jane@example.com", Phone: "555-0100"},
		},
		{
			name: "hyphenated aliases",
			fields: map[string]string{
				"first-name": "Jane",
				"last-name":  "Public",
				"your-email": "jane@example.com",
			},
			want: WebhookLeadInput{FirstName: "Jane", LastName: "Public", Email: "jane@example.com"},
		},
		{
			name: "canonical wins over alias",
			fields: map[string]string{
				"email":      "canonical@example.com",
				"your-email": "alias@example.com",
			},
			want: WebhookLeadInput{Email: "canonical@example.com"},
		},
		{
			name: "capitalized Phone alias",
			fields: map[string]string{
				"Phone": "555-0101",
				"email": "a@b.com",
			},
			want: WebhookLeadInput{Phone: "555-0101", Email: "a@b.com"},
		},
		{
			name: "lowercase phone wins over Phone",
			fields: map[string]string{
				"phone": "555-0100",
				"Phone": "555-0101",
			},
			want: WebhookLeadInput{Phone: "555-0100"},
		},
		{
			name: "values are trimmed",
			fields: map[string]string{
				"first_name": "  Jane  ",
				"email":      " jane@example.com ",
			},
			want: WebhookLeadInput{FirstName: "Jane", Email: "jane@example.com"},
		},
		{
			name:   "empty payload",
			fields: map[string]string{},
			want:   WebhookLeadInput{},
		},
		{
			name: "unknown keys ignored",
			fields: map[string]string{
				"company": "Acme",
				"email":   "a@b.com",
			},
			want: WebhookLeadInput{Email: "a@b.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWebhookPayload(tt.fields)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWebhookLeadInput_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		input WebhookLeadInput
		want  LeadFields
	}{
		{
			name:  "explicit name parts pass through",
			input: WebhookLeadInput{FirstName: "Jane", LastName: "Public", Email: "j@e.com"},
			want:  LeadFields{FirstName: "Jane", LastName: "Public", Email: "j@e.com"},
		},
		{
			name:  "combined name splits on whitespace",
			input: WebhookLeadInput{Name: "Jane Q Public", Email: "j@e.com"},
			want:  LeadFields{FirstName: "Jane", LastName: "Q Public", Email: "j@e.com"},
		},
		{
			name:  "single token name has empty last name",
			input: WebhookLeadInput{Name: "Jane"},
			want:  LeadFields{FirstName: "Jane"},
		},
		{
			name:  "runs of whitespace collapse",
			input: WebhookLeadInput{Name: "Jane   Q\tPublic"},
			want:  LeadFields{FirstName: "Jane", LastName: "Q Public"},
		},
		{
			name:  "explicit parts win over combined name",
			input: WebhookLeadInput{FirstName: "Jane", Name: "Someone Else"},
			want:  LeadFields{FirstName: "Jane"},
		},
		{
			name:  "last name alone keeps combined name unused",
			input: WebhookLeadInput{LastName: "Public", Name: "Someone Else"},
			want:  LeadFields{FirstName: PlaceholderFirstName, LastName: "Public"},
		},
		{
			name:  "no name at all falls back to placeholder",
			input: WebhookLeadInput{Email: "j@e.com"},
			want:  LeadFields{FirstName: "Unknown", Email: "j@e.com"},
		},
		{
			name:  "phone passes through",
			input: WebhookLeadInput{FirstName: "Jane", Phone: "555-0100"},
			want:  LeadFields{FirstName: "Jane", Phone: "555-0100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Resolve())
		})
	}
}
