// Package ytinfo resolves a video identifier into a directly fetchable media URL
// plus descriptive metadata.
//
// A Resolver fetches the get_video_info blob once per Describe call, decodes it,
// catalogs the offered encodings and returns a Descriptor:
//
//	d, err := ytinfo.New().WithFormat("22").Describe(ctx, "dQw4w9WgXcQ")
//	if err != nil {
//		return err
//	}
//	url, err := d.DownloadURL()
//
// Without a pinned format, DownloadURL picks the first encoding of the table
// priority that the video offers with a URL. Errors are matchable with errors.Is
// against the sentinels of the errs package.
package ytinfo
