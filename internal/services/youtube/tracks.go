package youtube

import "golang.org/x/text/language"

// selectTrack picks the caption track that best matches the language
// preferences. Manually created tracks win over machine generated ones, and
// the first listed track is the fallback when nothing matches.
func selectTrack(tracks []captionTrack, preferences []language.Tag) captionTrack {
	if track, ok := matchTracks(tracks, preferences, false); ok {
		return track
	}
	if track, ok := matchTracks(tracks, preferences, true); ok {
		return track
	}
	return tracks[0]
}

// matchTracks runs the language matcher over tracks of one kind and reports
// whether any of them satisfies the preferences.
func matchTracks(tracks []captionTrack, preferences []language.Tag, generated bool) (captionTrack, bool) {
	var (
		supported []language.Tag
		indexes   []int
	)
	for i, track := range tracks {
		if track.Generated() != generated {
			continue
		}
		tag, err := language.Parse(track.LanguageCode)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		indexes = append(indexes, i)
	}
	if len(supported) == 0 {
		return captionTrack{}, false
	}
	_, idx, conf := language.NewMatcher(supported).Match(preferences...)
	if conf < language.High {
		return captionTrack{}, false
	}
	return tracks[indexes[idx]], true
}
