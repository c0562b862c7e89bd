package core

import (
	"strings"
)

// HolderCategory selects the kind of holder to build.
type HolderCategory string

const (
	// CategoryStudent holders borrow up to 3 items; the category detail is the student number.
	CategoryStudent HolderCategory = "student"

	// CategoryTeacher holders borrow up to 5 items; the category detail is the department.
	CategoryTeacher HolderCategory = "teacher"
)

// ParseHolderCategory converts free text into a HolderCategory (case-insensitive).
func ParseHolderCategory(category string) (HolderCategory, error) {
	switch c := HolderCategory(strings.ToLower(strings.TrimSpace(category))); c {
	case CategoryStudent, CategoryTeacher:
		return c, nil
	default:
		return "", NewFailure(UnknownPolicyVariant, "unknown holder category '"+category+"'")
	}
}

// PolicyFor returns the limit policy of a category.
func PolicyFor(category HolderCategory) (LimitPolicy, error) {
	switch category {
	case CategoryStudent:
		return PolicyCapped3, nil
	case CategoryTeacher:
		return PolicyCapped5, nil
	default:
		return 0, NewFailure(UnknownPolicyVariant, "unknown holder category '"+string(category)+"'")
	}
}

// BuildHolder creates a holder of the given category with empty holdings.
// The detail is the student number for students and the department for teachers.
func BuildHolder(
	category HolderCategory,
	id HolderIDString,
	displayName string,
	contact string,
	detail string,
) (*Holder, error) {

	policy, err := PolicyFor(category)
	if err != nil {
		return nil, err
	}

	holder := NewHolder(id, displayName, contact, policy)
	holder.Category = category
	holder.CategoryDetail = detail

	return holder, nil
}
