package config

import (
	"fmt"

	"github.com/cognicore/lexstat/pkg/lexstat/clean"
	"github.com/cognicore/lexstat/pkg/lexstat/segment"
)

// Components holds the constructed analysis components of a profile.
type Components struct {
	Cleaner   *clean.Cleaner
	Segmenter segment.Segmenter
}

// Build validates the configuration and constructs its components.
func (c *Config) Build() (*Components, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cleaner, err := clean.New(clean.Options{
		Ranges:      c.Profile.Alphabet.Ranges,
		Chars:       c.Profile.Alphabet.Chars,
		Terminators: c.Profile.Terminators,
		Lowercase:   c.Profile.Lowercase,
		FoldAccents: c.Profile.FoldAccents,
		Policy:      clean.DropPolicy(c.Profile.DropPolicy),
	})
	if err != nil {
		return nil, fmt.Errorf("build cleaner: %w", err)
	}

	var seg segment.Segmenter
	switch c.Profile.Segmenter {
	case SegmenterDict:
		dict, err := segment.LoadDict(c.Profile.DictPath)
		if err != nil {
			return nil, fmt.Errorf("build dict segmenter: %w", err)
		}
		seg = dict
	default:
		seg = segment.NewPattern(c.Profile.MinWordLen)
	}

	return &Components{Cleaner: cleaner, Segmenter: seg}, nil
}
