package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowInLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	c := NewInLocation(jst)

	assert.Equal(t, jst, c.Now().Location())
}

func TestNowAdvances(t *testing.T) {
	c := New()
	first := c.Now()

	assert.False(t, c.Now().Before(first))
}
