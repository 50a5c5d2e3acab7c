package candidate

import (
	"strings"
	"time"

	"go-recruit/internal/resume"
	"go-recruit/internal/shared/istanbul"
	"go-recruit/internal/shared/turkish"
)

// DirectoryEntry pairs a candidate with the merged resume the filter
// predicates run against.
type DirectoryEntry struct {
	Candidate Candidate
	Resume    resume.Bundle
}

// Gender input is free text accumulated over a decade of imports, so
// matching goes through synonym sets instead of equality.
var genderSynonyms = map[string][]string{
	"male":   {"erkek", "male", "e", "m", "bay"},
	"female": {"kadın", "kız", "female", "k", "f", "bayan"},
}

func canonicalGender(s string) string {
	folded := turkish.Fold(s)
	for canon, names := range genderSynonyms {
		for _, name := range names {
			if folded == name {
				return canon
			}
		}
	}
	return folded
}

func containsFold(haystack, needle string) bool {
	return turkish.Contains(haystack, needle)
}

func equalFold(a, b string) bool {
	return turkish.Equal(a, b)
}

// Apply evaluates every predicate of the filter state against every
// entry. The function is pure: same entries, same state, same clock in,
// same subset out, and applying it twice changes nothing.
func Apply(entries []DirectoryEntry, f FilterState, now time.Time) []DirectoryEntry {
	matched := make([]DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		if Matches(entry, f, now) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// Matches reports whether one entry passes every active predicate.
// Inactive predicates (zero values) always pass, so an empty state
// matches everything.
func Matches(entry DirectoryEntry, f FilterState, now time.Time) bool {
	c := entry.Candidate
	b := entry.Resume

	if f.Keyword != "" &&
		!containsFold(c.FullName(), f.Keyword) &&
		!containsFold(c.Summary, f.Keyword) &&
		!matchesAnySkill(b.Skills, f.Keyword) &&
		!matchesAnyPosition(b.Experiences, f.Keyword) {
		return false
	}
	if f.Email != "" && !containsFold(c.Email, f.Email) {
		return false
	}

	age := c.Age(now)
	if f.AgeMin > 0 && (c.BirthYear <= 0 || age < f.AgeMin) {
		return false
	}
	if f.AgeMax > 0 && (c.BirthYear <= 0 || age > f.AgeMax) {
		return false
	}

	if f.Gender != "" && !matchesGender(c.Gender, f.Gender) {
		return false
	}
	if f.Nationality != "" && !equalFold(c.Nationality, f.Nationality) {
		return false
	}
	if f.City != "" && !equalFold(c.City, f.City) {
		return false
	}
	if f.District != "" && !equalFold(c.District, f.District) {
		return false
	}
	// Side selection only narrows within Istanbul.
	if f.IstanbulSide != "" {
		if !equalFold(c.City, "İstanbul") || !istanbul.OnSide(c.District, f.IstanbulSide) {
			return false
		}
	}

	if f.EducationLevel != "" && !matchesEducationLevel(b.Educations, f.EducationLevel) {
		return false
	}
	if f.University != "" && !matchesUniversity(b.Educations, f.University) {
		return false
	}
	if f.Department != "" && !matchesEducationDepartment(b.Educations, f.Department) {
		return false
	}

	if f.Position != "" && !matchesAnyPosition(b.Experiences, f.Position) {
		return false
	}
	if f.MinExperienceYears > 0 && b.TotalExperienceYears(now) < f.MinExperienceYears {
		return false
	}
	if f.CurrentlyEmployed != nil && b.CurrentlyEmployed() != *f.CurrentlyEmployed {
		return false
	}

	if f.Skills != "" && !matchesAllSkills(b.Skills, f.Skills) {
		return false
	}
	if f.Language != "" && !matchesLanguage(b.Languages, f.Language, f.LanguageLevel) {
		return false
	}

	if f.DisabilityCategory != "" && !equalFold(c.DisabilityCategory, f.DisabilityCategory) {
		return false
	}
	if f.DriverLicense != "" && !equalFold(c.DriverLicense, f.DriverLicense) {
		return false
	}
	return true
}

// matchesGender treats the selection as a comma separated multi-select;
// each token is canonicalized on its own and the candidate passes when
// their canonical gender matches any of them.
func matchesGender(have, selected string) bool {
	canon := canonicalGender(have)
	active := false
	for _, token := range strings.Split(selected, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		active = true
		if canon == canonicalGender(token) {
			return true
		}
	}
	return !active
}

func matchesAnySkill(skills []resume.Skill, needle string) bool {
	for _, s := range skills {
		if containsFold(s.Name, needle) {
			return true
		}
	}
	return false
}

// matchesAllSkills expects a comma separated list; every token must be
// covered by at least one skill entry.
func matchesAllSkills(skills []resume.Skill, wanted string) bool {
	for _, token := range strings.Split(wanted, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !matchesAnySkill(skills, token) {
			return false
		}
	}
	return true
}

func matchesAnyPosition(experiences []resume.Experience, needle string) bool {
	for _, exp := range experiences {
		if containsFold(exp.Position, needle) || containsFold(exp.CompanyName, needle) {
			return true
		}
	}
	return false
}

func matchesEducationLevel(educations []resume.Education, level string) bool {
	for _, edu := range educations {
		if equalFold(edu.Level, level) {
			return true
		}
	}
	return false
}

func matchesUniversity(educations []resume.Education, needle string) bool {
	for _, edu := range educations {
		if containsFold(edu.School, needle) {
			return true
		}
	}
	return false
}

func matchesEducationDepartment(educations []resume.Education, needle string) bool {
	for _, edu := range educations {
		if containsFold(edu.Department, needle) {
			return true
		}
	}
	return false
}

func matchesLanguage(languages []resume.Language, name, level string) bool {
	for _, lang := range languages {
		if !containsFold(lang.Name, name) {
			continue
		}
		if level == "" || equalFold(lang.Level, level) {
			return true
		}
	}
	return false
}
