// Package youtube fetches caption transcripts by scraping the public
// YouTube watch page.
//
// The client loads the watch page for a video, extracts the embedded
// ytInitialPlayerResponse JSON, picks a caption track that best matches the
// configured language preferences, and downloads the track in the json3
// timedtext format. Requests rotate through a pool of browser User-Agent
// strings and can be routed through an HTTP or SOCKS5 proxy.
//
// Failures are classified at their point of origin: removed or private
// videos map to services.ErrVideoUnavailable, videos without caption tracks
// map to services.ErrTranscriptsDisabled, and network or payload problems
// map to services.ErrUpstream.
package youtube
