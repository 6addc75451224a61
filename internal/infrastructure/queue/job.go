package queue

// Job is one unit of transcode work. Everything the handler needs travels in
// the job itself; workers hold no per-video state.
type Job struct {
	OwnerID      string
	VideoID      string
	OriginalName string
	StoredKey    string
	Preset       string
}
