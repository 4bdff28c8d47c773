package authz

import (
	"github.com/dapittriandi/simdor-service/internal/lifecycle"
)

// VisibleFields computes the set of fields the given role may see and edit
// at the given stage: roleFieldSet(role) ∩ stageFieldSet(stage), plus the
// shared certificate-distribution group at the Invoice stage. A field never
// becomes editable unless both the role permission and the stage relevance
// hold, so no role can touch a future stage's fields or reopen a past
// stage's locked ones.
func VisibleFields(role string, stage lifecycle.Status) []lifecycle.Field {
	stageSet := make(map[lifecycle.Field]bool)
	for _, f := range lifecycle.StageFields(stage) {
		stageSet[f] = true
	}

	var out []lifecycle.Field
	seen := make(map[lifecycle.Field]bool)
	for _, f := range roleFields[role] {
		if stageSet[f] && !seen[f] {
			out = append(out, f)
			seen[f] = true
		}
	}

	if stage == lifecycle.StatusInvoice {
		for _, f := range roleFields[RoleAll] {
			if !seen[f] {
				out = append(out, f)
				seen[f] = true
			}
		}
	}

	return out
}

// CanEditField reports whether one specific field is editable for the role
// at the stage.
func CanEditField(role string, stage lifecycle.Status, field lifecycle.Field) bool {
	for _, f := range VisibleFields(role, stage) {
		if f == field {
			return true
		}
	}
	return false
}
