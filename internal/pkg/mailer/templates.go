package mailer

import "strings"

// DocumentTemplate carries the display wording for one legal document type.
type DocumentTemplate struct {
	DisplayName string
	Consequence string
}

// Static registry from normalized document-type key to template. Lookup
// normalizes by case-folding and stripping delimiters, so "Terms-Of-Service",
// "terms_of_service" and "TermsOfService" all resolve to the same entry.
var documentTemplates = map[string]DocumentTemplate{
	"termsofservice": {
		DisplayName: "Terms of Service",
		Consequence: "your account will be permanently deleted",
	},
	"privacypolicy": {
		DisplayName: "Privacy Policy",
		Consequence: "your account will be permanently deleted",
	},
	"dpa": {
		DisplayName: "Data Processing Agreement",
		Consequence: "your account will be permanently deleted",
	},
	"churchadminterms": {
		DisplayName: "Church Admin Terms",
		Consequence: "your church and all of its data will be deactivated",
	},
}

func normalizeDocumentKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case '_', '-', ' ', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TemplateForDocument resolves the template for a document-type name.
// Returns nil when nothing matches.
func TemplateForDocument(name string) *DocumentTemplate {
	if tpl, ok := documentTemplates[normalizeDocumentKey(name)]; ok {
		return &tpl
	}
	return nil
}
