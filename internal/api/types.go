package api

// TranscriptRequest is the body of POST /transcript.
type TranscriptRequest struct {
	URL string `json:"url"`
}

// TranscriptSegment is one timed caption unit in a transport-friendly format.
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TranscriptResponse is the success body of POST /transcript. Segments keep
// provider order and are never null on the wire, even when empty.
type TranscriptResponse struct {
	VideoID  string              `json:"videoId"`
	Segments []TranscriptSegment `json:"segments"`
}

// ErrorResponse is the failure body shared by every endpoint.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// BannerResponse is the body of GET /, identifying the service.
type BannerResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}
