package catalog

import "regexp"

// PrivacyCategory describes one class of legally protected or
// investigation-irrelevant data, and the plugin best suited to locating it
// so its output can be reviewed and minimized.
type PrivacyCategory struct {
	Key             string
	Label           string
	Description     string
	Plugin          string
	PluginRationale string
}

// PrivacyCategories is the fixed review checklist shown to warrant officers.
var PrivacyCategories = []PrivacyCategory{
	{
		Key:   "financial",
		Label: "Financial Details",
		Description: "Complete credit card numbers, banking credentials, balances, " +
			"and transaction activity unrelated to the investigation.",
		Plugin:          "windows.filescan",
		PluginRationale: "Scans file objects that commonly reference exported bank statements and payment caches.",
	},
	{
		Key:             "health",
		Label:           "Health & Medical Information",
		Description:     "Medical histories, diagnoses, therapy notes, or prescription details.",
		Plugin:          "windows.dumpfiles",
		PluginRationale: "Carves cached documents (PDF/EMR exports) that often hold medical information.",
	},
	{
		Key:             "communications",
		Label:           "Personal Communications",
		Description:     "Private chat logs, diary entries, or intimate letters that have no probative value.",
		Plugin:          "windows.strings",
		PluginRationale: "Extracts printable strings that expose chat transcripts and diary fragments in memory.",
	},
	{
		Key:             "credentials",
		Label:           "Credentials / Logins",
		Description:     "Passwords or tokens for unrelated services such as personal email or social accounts.",
		Plugin:          "windows.lsadump",
		PluginRationale: "Dumps LSA secrets and DPAPI blobs that contain cached user credentials.",
	},
	{
		Key:             "sexual",
		Label:           "Sexual Orientation / Preferences",
		Description:     "Explicit material or conversations about private sexual activity or orientation.",
		Plugin:          "windows.memdump",
		PluginRationale: "Dumps process memory to review applications that cached explicit or personal content.",
	},
	{
		Key:             "beliefs",
		Label:           "Political or Religious Beliefs",
		Description:     "Data about political party membership, religious affiliation, or ideology discussions not linked to a crime.",
		Plugin:          "windows.registry.printkey",
		PluginRationale: "Inspects registry keys (shellbags/MRUs) that show organizations, groups, or reading history.",
	},
}

var privacyCategoryIndex = func() map[string]PrivacyCategory {
	m := make(map[string]PrivacyCategory, len(PrivacyCategories))
	for _, c := range PrivacyCategories {
		m[c.Key] = c
	}
	return m
}()

// PrivacyCategoryByKey looks up a category by its key.
func PrivacyCategoryByKey(key string) (PrivacyCategory, bool) {
	c, ok := privacyCategoryIndex[key]
	return c, ok
}

type maskRule struct {
	pattern     *regexp.Regexp
	replacement string
}

var maskRules = []maskRule{
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[EMAIL]"},
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), "[IP]"},
	{regexp.MustCompile(`\b(?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}\b`), "[MAC]"},
	{regexp.MustCompile(`\beyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\b`), "[JWT]"},
	{regexp.MustCompile(`\b(AKIA|ASIA)[A-Z0-9]{16}\b`), "[AWS_KEY]"},
	// Long contiguous hex strings (hashes, keys).
	{regexp.MustCompile(`\b[0-9A-Fa-f]{32,}\b`), "[HEX_SECRET]"},
	// Repeated hex byte dumps (e.g. DPAPI / NL$KM blocks).
	{regexp.MustCompile(`(?:\b[0-9A-Fa-f]{2}\s+){8,}\b[0-9A-Fa-f]{2}\b`), "[HEX_BLOCK]"},
}

// MaskSensitive replaces identifiers and secret-looking material in plugin
// output with placeholder tags before it is shown or exported.
func MaskSensitive(text string) string {
	masked := text
	for _, rule := range maskRules {
		masked = rule.pattern.ReplaceAllString(masked, rule.replacement)
	}
	return masked
}
