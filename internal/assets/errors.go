package assets

import "errors"

var (
	// ErrRegistryFull is returned when every texture bind slot is taken.
	ErrRegistryFull = errors.New("texture slots exhausted")

	// ErrDuplicateTag is returned when a tag is registered twice. The first
	// registration stays in effect.
	ErrDuplicateTag = errors.New("duplicate tag")

	// ErrNotFound is returned by tag lookups that miss.
	ErrNotFound = errors.New("tag not found")

	// ErrUnsupportedChannels is returned for source images that are neither
	// 3- nor 4-channel.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)
