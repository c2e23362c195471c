package services

import (
	"fmt"

	"booking-widget/config"
)

// ImageRotator steps through a room's photos. Next and Previous wrap around
// at both ends. With no photos it shows a placeholder image.
type ImageRotator struct {
	urls  []string
	index int
}

func NewImageRotator(urls []string) *ImageRotator {
	return &ImageRotator{urls: urls}
}

func (r *ImageRotator) Len() int {
	return len(r.urls)
}

func (r *ImageRotator) Index() int {
	return r.index
}

// Current is the URL on display.
func (r *ImageRotator) Current() string {
	if len(r.urls) == 0 || r.urls[r.index] == "" {
		return config.PLACEHOLDER_IMAGE_URL
	}
	return r.urls[r.index]
}

func (r *ImageRotator) IsPlaceholder() bool {
	return len(r.urls) == 0
}

// HasControls reports whether previous/next and indicators are offered.
func (r *ImageRotator) HasControls() bool {
	return len(r.urls) > 1
}

func (r *ImageRotator) Next() string {
	if len(r.urls) > 0 {
		r.index = (r.index + 1) % len(r.urls)
	}
	return r.Current()
}

func (r *ImageRotator) Previous() string {
	if len(r.urls) > 0 {
		r.index = (r.index - 1 + len(r.urls)) % len(r.urls)
	}
	return r.Current()
}

// JumpTo shows the photo at index i.
func (r *ImageRotator) JumpTo(i int) (string, error) {
	if i < 0 || i >= len(r.urls) {
		return "", fmt.Errorf("photo index %d out of range [0, %d)", i, len(r.urls))
	}
	r.index = i
	return r.Current(), nil
}
