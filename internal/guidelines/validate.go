package guidelines

import "strings"

// Canonical resolves a caller-supplied value against the category's known
// key set. Matching is case-insensitive and tolerant of spaces and hyphens
// in place of underscores. Unknown values degrade to the category default;
// substituted reports whether that happened. It never fails: an unknown
// category behaves like an unknown value and yields the tone default.
func Canonical(category Category, value string) (key string, substituted bool) {
	switch category {
	case CategoryTone:
		return canonicalKey(value, tones, nil, DefaultTone)
	case CategoryIndustry:
		// "general" is a valid selection with no table entry of its own.
		return canonicalKey(value, industries, []string{DefaultIndustry}, DefaultIndustry)
	case CategoryExperienceLevel:
		return canonicalKey(value, experienceLevels, nil, DefaultExperienceLevel)
	case CategorySkillCategory:
		return canonicalKey(value, SkillCategories, nil, DefaultSkillCategory)
	default:
		return DefaultTone, true
	}
}

// CanonicalTone resolves a tone value, substituting the default when unknown.
func CanonicalTone(value string) (string, bool) {
	return Canonical(CategoryTone, value)
}

// CanonicalIndustry resolves an industry value, substituting the default
// when unknown.
func CanonicalIndustry(value string) (string, bool) {
	return Canonical(CategoryIndustry, value)
}

// CanonicalExperienceLevel resolves an experience-level value, substituting
// the default when unknown.
func CanonicalExperienceLevel(value string) (string, bool) {
	return Canonical(CategoryExperienceLevel, value)
}

func canonicalKey[V any](value string, table map[string]V, extra []string, def string) (string, bool) {
	normalized := normalizeKey(value)
	if normalized == "" {
		return def, false
	}
	if _, ok := table[normalized]; ok {
		return normalized, false
	}
	for _, k := range extra {
		if normalized == k {
			return k, false
		}
	}
	return def, true
}

func normalizeKey(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
