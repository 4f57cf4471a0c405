package guidelines

import "testing"

func TestCanonicalNeverFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		category        Category
		value           string
		wantKey         string
		wantSubstituted bool
	}{
		{name: "known tone", category: CategoryTone, value: "enthusiastic", wantKey: "enthusiastic"},
		{name: "tone uppercase", category: CategoryTone, value: "PROFESSIONAL", wantKey: "professional"},
		{name: "tone padded", category: CategoryTone, value: "  innovative  ", wantKey: "innovative"},
		{name: "unknown tone", category: CategoryTone, value: "sarcastic", wantKey: DefaultTone, wantSubstituted: true},
		{name: "empty tone", category: CategoryTone, value: "", wantKey: DefaultTone},
		{name: "known industry", category: CategoryIndustry, value: "finance", wantKey: "finance"},
		{name: "general industry accepted", category: CategoryIndustry, value: "general", wantKey: "general"},
		{name: "unknown industry", category: CategoryIndustry, value: "alchemy", wantKey: DefaultIndustry, wantSubstituted: true},
		{name: "experience hyphenated", category: CategoryExperienceLevel, value: "entry-level", wantKey: "entry_level"},
		{name: "experience spaced", category: CategoryExperienceLevel, value: "Senior Level", wantKey: "senior_level"},
		{name: "unknown experience", category: CategoryExperienceLevel, value: "wizard", wantKey: DefaultExperienceLevel, wantSubstituted: true},
		{name: "empty experience", category: CategoryExperienceLevel, value: "", wantKey: DefaultExperienceLevel},
		{name: "known skill category", category: CategorySkillCategory, value: "soft_skills", wantKey: "soft_skills"},
		{name: "unknown skill category", category: CategorySkillCategory, value: "magic", wantKey: DefaultSkillCategory, wantSubstituted: true},
		{name: "unknown category", category: Category("color"), value: "red", wantKey: DefaultTone, wantSubstituted: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			key, substituted := Canonical(tt.category, tt.value)
			if key != tt.wantKey {
				t.Fatalf("Canonical(%q, %q) key = %q, want %q", tt.category, tt.value, key, tt.wantKey)
			}
			if substituted != tt.wantSubstituted {
				t.Fatalf("Canonical(%q, %q) substituted = %v, want %v", tt.category, tt.value, substituted, tt.wantSubstituted)
			}
		})
	}
}

func TestIndustryGeneralFallsBackToTechnology(t *testing.T) {
	t.Parallel()

	general := Industry("general")
	tech := Industry("technology")
	if len(general.Keywords) == 0 || general.Keywords[0] != tech.Keywords[0] {
		t.Fatalf("general industry should render the technology guide")
	}
}

func TestGuideLookupsCoverAllListedKeys(t *testing.T) {
	t.Parallel()

	for _, key := range Tones() {
		if _, ok := Tone(key); !ok {
			t.Fatalf("tone %q listed but missing", key)
		}
	}
	for _, key := range ExperienceLevels() {
		if _, ok := Experience(key); !ok {
			t.Fatalf("experience level %q listed but missing", key)
		}
	}
	for _, key := range Industries() {
		g := Industry(key)
		if len(g.Keywords) == 0 {
			t.Fatalf("industry %q has no keywords", key)
		}
	}
}

func TestAvailableOptions(t *testing.T) {
	t.Parallel()

	opts := AvailableOptions()
	if len(opts.Tones) == 0 || len(opts.Industries) == 0 || len(opts.ExperienceLevels) == 0 {
		t.Fatalf("expected non-empty option lists: %+v", opts)
	}
	if len(opts.ActionVerbs) != 10 {
		t.Fatalf("expected 10 action verbs, got %d", len(opts.ActionVerbs))
	}
	if len(opts.AchievementPatterns) != len(AchievementPatterns) {
		t.Fatalf("expected all achievement patterns")
	}
}

func TestAllKnownSkillsDeterministic(t *testing.T) {
	t.Parallel()

	first := AllKnownSkills()
	if len(first) == 0 {
		t.Fatalf("expected known skills")
	}
	for i := 0; i < 3; i++ {
		again := AllKnownSkills()
		if len(again) != len(first) {
			t.Fatalf("length changed between calls")
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("order changed between calls at %d: %q vs %q", j, again[j], first[j])
			}
		}
	}
}
