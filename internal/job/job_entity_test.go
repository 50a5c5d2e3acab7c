package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJob_SuitableFor(t *testing.T) {
	open := Job{SuitableCategories: ""}
	assert.True(t, open.SuitableFor("Görme Engeli"))
	assert.True(t, open.SuitableFor(""))

	restricted := Job{SuitableCategories: "İşitme Engeli, Ortopedik Engel"}
	assert.True(t, restricted.SuitableFor("işitme engeli"))
	assert.True(t, restricted.SuitableFor("ORTOPEDİK ENGEL"))
	assert.False(t, restricted.SuitableFor("Görme Engeli"))
}
