package services

import (
	"testing"

	"booking-widget/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRotator_WrapsAtBothEnds(t *testing.T) {
	r := NewImageRotator([]string{"p0", "p1", "p2"})

	_, err := r.JumpTo(2)
	require.NoError(t, err)
	assert.Equal(t, "p0", r.Next())
	assert.Equal(t, 0, r.Index())

	assert.Equal(t, "p2", r.Previous())
	assert.Equal(t, 2, r.Index())
}

func TestImageRotator_JumpTo(t *testing.T) {
	r := NewImageRotator([]string{"p0", "p1", "p2"})

	url, err := r.JumpTo(1)
	require.NoError(t, err)
	assert.Equal(t, "p1", url)

	_, err = r.JumpTo(3)
	assert.Error(t, err)
	_, err = r.JumpTo(-1)
	assert.Error(t, err)
	assert.Equal(t, 1, r.Index())
}

func TestImageRotator_Placeholder(t *testing.T) {
	r := NewImageRotator(nil)

	assert.True(t, r.IsPlaceholder())
	assert.False(t, r.HasControls())
	assert.Equal(t, config.PLACEHOLDER_IMAGE_URL, r.Current())
	assert.Equal(t, config.PLACEHOLDER_IMAGE_URL, r.Next())
	assert.Equal(t, config.PLACEHOLDER_IMAGE_URL, r.Previous())
}

func TestImageRotator_SinglePhotoHasNoControls(t *testing.T) {
	r := NewImageRotator([]string{"p0"})

	assert.False(t, r.HasControls())
	assert.Equal(t, "p0", r.Next())
}
