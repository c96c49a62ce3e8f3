// Package catalog loads the list of episodes the views offer for playback.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/podwaves/internal/episode"
)

// ErrInvalidEpisode is returned when a catalog entry cannot be played.
var ErrInvalidEpisode = errors.New("invalid episode")

type document struct {
	Episodes []episode.Episode `koanf:"episodes"`
}

// Load reads a TOML catalog made of [[episodes]] tables.
// An empty path yields an empty catalog.
func Load(path string) ([]episode.Episode, error) {
	if path == "" {
		return nil, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	for i := range doc.Episodes {
		if err := validate(doc.Episodes[i]); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i+1, err)
		}
		doc.Episodes[i].Title = strings.TrimSpace(doc.Episodes[i].Title)
	}

	return doc.Episodes, nil
}

func validate(e episode.Episode) error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("%w: missing title", ErrInvalidEpisode)
	case strings.TrimSpace(e.URL) == "":
		return fmt.Errorf("%w: %q has no url", ErrInvalidEpisode, e.Title)
	case e.Duration < 0:
		return fmt.Errorf("%w: %q has negative duration", ErrInvalidEpisode, e.Title)
	}
	return nil
}

// TotalDuration sums the duration of all episodes.
func TotalDuration(eps []episode.Episode) time.Duration {
	var total time.Duration
	for _, e := range eps {
		total += e.Length()
	}
	return total
}

// Summary renders a one-line description, e.g. "1,204 episodes · 512:03:10".
func Summary(eps []episode.Episode) string {
	if len(eps) == 0 {
		return "no episodes"
	}
	count := english.PluralWord(len(eps), "episode", "")
	return fmt.Sprintf("%s %s · %s",
		humanize.Comma(int64(len(eps))),
		count,
		episode.FormatDuration(TotalDuration(eps)),
	)
}
