// Package videoinfo fetches and decodes the get_video_info metadata blob.
//
// The blob is a URL-encoded query string. Repeated keys carry repeated fields,
// notably one "itag" entry per offered encoding:
//
//	token=abc&title=My+Video&itag=22,url=http://host/a.mp4&itag=37,url=http://host/b.mp4
//
// Decode is a generic multimap decoder; encoding-specific parsing lives in
// the formats package.
package videoinfo
