package model

// Engine option keys understood by yt-dlp
const (
	OptKeyOutputTemplate    = "outtmpl"
	OptKeyFormat            = "format"
	OptKeyMergeOutputFormat = "merge_output_format"
	OptKeyExtractAudio      = "extractaudio"
	OptKeyAudioFormat       = "audioformat"
)

// DownloadOptions is the configuration record handed to the download engine.
// It is a value type: each request gets its own copy.
type DownloadOptions struct {
	OutputTemplate    string // destination folder joined with a %(title)s.%(ext)s style pattern
	Format            string // yt-dlp format selector
	ExtractAudio      bool
	MergeOutputFormat string // container for merged video+audio, empty if unused
	AudioFormat       string // container for extracted audio, empty if unused
}

// Map renders the record as the engine option dictionary. Optional keys are
// omitted when unset.
func (o DownloadOptions) Map() map[string]any {
	m := map[string]any{
		OptKeyOutputTemplate: o.OutputTemplate,
		OptKeyFormat:         o.Format,
	}
	if o.MergeOutputFormat != "" {
		m[OptKeyMergeOutputFormat] = o.MergeOutputFormat
	}
	if o.ExtractAudio {
		m[OptKeyExtractAudio] = true
	}
	if o.AudioFormat != "" {
		m[OptKeyAudioFormat] = o.AudioFormat
	}
	return m
}

// DownloadRequest is consumed exactly once by a dispatcher
type DownloadRequest struct {
	URL      string
	Folder   string
	Platform Platform
	Option   FormatOption
	Options  DownloadOptions
}
