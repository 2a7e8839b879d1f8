package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dronify/warehouse-api/internal/domain/entity"
)

// TestRequestStatus_CanTransitionTo recorre la tabla completa de la máquina
// de estados: solo PENDING→APPROVED, PENDING→REJECTED y APPROVED→COMPLETED
// son válidas; todo lo demás se rechaza.
func TestRequestStatus_CanTransitionTo(t *testing.T) {
	all := []entity.RequestStatus{
		entity.StatusPending, entity.StatusApproved,
		entity.StatusRejected, entity.StatusCompleted,
	}
	allowed := map[entity.RequestStatus]map[entity.RequestStatus]bool{
		entity.StatusPending:  {entity.StatusApproved: true, entity.StatusRejected: true},
		entity.StatusApproved: {entity.StatusCompleted: true},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			assert.Equal(t, want, from.CanTransitionTo(to),
				"transición %s → %s", from, to)
		}
	}
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	assert.False(t, entity.StatusPending.IsTerminal())
	assert.False(t, entity.StatusApproved.IsTerminal())
	assert.True(t, entity.StatusRejected.IsTerminal())
	assert.True(t, entity.StatusCompleted.IsTerminal())
}

func TestRequestStatus_IsValid(t *testing.T) {
	assert.True(t, entity.StatusPending.IsValid())
	assert.True(t, entity.StatusCompleted.IsValid())
	assert.False(t, entity.RequestStatus("CANCELLED").IsValid())
	assert.False(t, entity.RequestStatus("pending").IsValid())
}
