package procutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogicalCPUs(t *testing.T) {
	assert.GreaterOrEqual(t, LogicalCPUs(), 1)
}
