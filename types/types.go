package types

import "strings"

// extSuffixLen is the number of trailing description characters that name the container.
const extSuffixLen = 3

// Encoding describes one known audio/video variant offered by the site.
type Encoding struct {
	ID          string `json:"id" jsonschema:"description=Encoding identifier (itag)."`
	Description string `json:"description" jsonschema:"description=Human readable resolution/codec/container summary."`
}

// Ext returns the file extension encoded in the description: its last three
// characters, lower-cased.
func (e Encoding) Ext() string {
	d := strings.TrimSpace(e.Description)
	if len(d) > extSuffixLen {
		d = d[len(d)-extSuffixLen:]
	}
	return strings.ToLower(d)
}

// Resolution is the resolved download target together with the video's descriptive metadata.
type Resolution struct {
	ID                string   `json:"id" jsonschema:"description=Video identifier."`
	Title             string   `json:"title" jsonschema:"description=Video title or the identifier when the site did not report one."`
	Author            string   `json:"author,omitempty" jsonschema:"description=Uploader name."`
	Duration          int      `json:"duration" jsonschema:"description=Length in seconds or -1 when unknown."`
	Thumbnail         string   `json:"thumbnail,omitempty" jsonschema:"description=Thumbnail image URL."`
	Keywords          []string `json:"keywords,omitempty" jsonschema:"description=Distinct sorted keywords."`
	Rating            float64  `json:"rating" jsonschema:"description=Average rating or -1 when unknown."`
	Format            string   `json:"format" jsonschema:"description=Encoding identifier chosen for download."`
	FormatDescription string   `json:"format_description,omitempty" jsonschema:"description=Description of the chosen encoding when known."`
	URL               string   `json:"url" jsonschema:"description=Direct media URL."`
	Filename          string   `json:"filename" jsonschema:"description=Output file name without extension."`
	Ext               string   `json:"ext" jsonschema:"description=Lower-case file extension without the leading dot."`
	Formats           []string `json:"formats" jsonschema:"description=All encoding identifiers offered for this video."`
}
