package transcript

import "context"

// Segment is one timed caption unit within a video's transcript. Times are
// seconds; ordering is ascending by Start as delivered by the provider.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// Transcript is an ordered sequence of segments plus the caption-track
// metadata the provider observed while selecting a track.
type Transcript struct {
	Segments  []Segment
	Language  string
	Generated bool
}

// Request is a transcript retrieval request as received from the HTTP
// surface. URL is the only field; it is not validated before parsing.
type Request struct {
	URL string
}

// Response couples the derived video identifier with the provider-returned
// segments, in provider order.
type Response struct {
	VideoID  string
	Segments []Segment
}

// Provider retrieves the transcript for a video identifier. Implementations
// classify every failure with one of the services failure markers: transcripts
// disabled, video unavailable, or upstream. The zero-segment success case is
// meaningful and must be returned as a success, never as an error.
type Provider interface {
	FetchTranscript(ctx context.Context, videoID string) (Transcript, error)
}
