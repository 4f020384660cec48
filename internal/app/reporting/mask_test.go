package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskName(t *testing.T) {
	assert.Equal(t, "王XX", MaskName("王小明"))
	assert.Equal(t, "歐XX", MaskName("歐陽小華"))
	assert.Equal(t, "李X", MaskName("李四"))
	assert.Equal(t, "A", MaskName("A"))
	assert.Equal(t, "", MaskName(""))
}
