package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	id := uuid.MustParse("0b6c2a8e-5f3c-4d8e-9a1b-2c3d4e5f6a7b")
	assert.Equal(t, "analyses/0b6c2a8e-5f3c-4d8e-9a1b-2c3d4e5f6a7b.json", ObjectName(id))
}
