package contact

// Store-native numeric type codes for phone and email rows. A code of 0
// means a custom label, which the store carries in the explicit label column.
var phoneLabels = map[int64]string{
	1:  "home",
	2:  "mobile",
	3:  "work",
	4:  "work fax",
	5:  "home fax",
	6:  "pager",
	7:  "other",
	12: "main",
}

var emailLabels = map[int64]string{
	1: "home",
	2: "work",
	3: "other",
	4: "mobile",
}

// PhoneLabel resolves a phone type code to its label, or "" when the code is
// not recognized.
func PhoneLabel(code int64) string {
	return phoneLabels[code]
}

// EmailLabel resolves an email type code to its label, or "" when the code
// is not recognized.
func EmailLabel(code int64) string {
	return emailLabels[code]
}

// ResolveLabel applies the label fallback chain for a phone or email row:
// the explicit label when non-empty, else the label resolved from the type
// code, else the empty string.
func ResolveLabel(explicit string, code int64, resolve func(int64) string) string {
	if explicit != "" {
		return explicit
	}
	return resolve(code)
}
