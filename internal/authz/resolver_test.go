package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapittriandi/simdor-service/internal/lifecycle"
	"github.com/dapittriandi/simdor-service/pkg/constants"
)

func fieldSet(fields []lifecycle.Field) map[lifecycle.Field]bool {
	m := make(map[lifecycle.Field]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return m
}

func TestVisibleFieldsIsIntersection(t *testing.T) {
	// Outside the Invoice stage, every visible field must belong to both
	// the role set and the stage set.
	for _, role := range constants.AllRoles {
		for _, stage := range lifecycle.StatusSequence {
			if stage == lifecycle.StatusInvoice {
				continue
			}
			roleSet := fieldSet(RoleFieldSet(role))
			stageSet := fieldSet(lifecycle.StageFields(stage))
			for _, f := range VisibleFields(role, stage) {
				assert.True(t, roleSet[f], "%s/%s: %s not in role set", role, stage, f)
				assert.True(t, stageSet[f], "%s/%s: %s not in stage set", role, stage, f)
			}
		}
	}
}

func TestVisibleFieldsCustomerServiceAtIntake(t *testing.T) {
	fields := VisibleFields(constants.RoleCustomerService, lifecycle.StatusNewOrder)
	got := fieldSet(fields)

	assert.True(t, got[lifecycle.FieldNomorOrder])
	assert.True(t, got[lifecycle.FieldTanggalOrder])
	assert.False(t, got[lifecycle.FieldNilaiInvoice])
}

func TestVisibleFieldsFinanceAdminAtIntake(t *testing.T) {
	// Finance owns no intake fields, so the intersection is empty.
	assert.Empty(t, VisibleFields(constants.RoleFinanceAdmin, lifecycle.StatusNewOrder))
}

func TestVisibleFieldsKoordinatorIsReadOnly(t *testing.T) {
	for _, stage := range lifecycle.StatusSequence {
		if stage == lifecycle.StatusInvoice {
			continue
		}
		assert.Empty(t, VisibleFields(constants.RoleKoordinator, stage), string(stage))
	}
}

func TestInvoiceStageGrantsDistributionToEveryRole(t *testing.T) {
	for _, role := range constants.AllRoles {
		got := fieldSet(VisibleFields(role, lifecycle.StatusInvoice))
		for _, f := range lifecycle.DistributionFields {
			require.True(t, got[f], "%s should edit %s at Invoice", role, f)
		}
	}
}

func TestVisibleFieldsHasNoDuplicates(t *testing.T) {
	for _, role := range constants.AllRoles {
		for _, stage := range lifecycle.StatusSequence {
			fields := VisibleFields(role, stage)
			seen := make(map[lifecycle.Field]bool)
			for _, f := range fields {
				assert.False(t, seen[f], "%s/%s: duplicate %s", role, stage, f)
				seen[f] = true
			}
		}
	}
}

func TestCanEditField(t *testing.T) {
	assert.True(t, CanEditField(constants.RoleCustomerService, lifecycle.StatusNewOrder, lifecycle.FieldNomorOrder))
	assert.False(t, CanEditField(constants.RoleCustomerService, lifecycle.StatusClosedOrder, lifecycle.FieldNilaiProforma))
	assert.True(t, CanEditField(constants.RoleKoordinator, lifecycle.StatusInvoice, lifecycle.FieldPengirimSertifikat))
}
