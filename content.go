package coursedump

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// URLKind classifies what a captured URL points at. The classification is a
// heuristic over the URL string only; nothing is fetched.
type URLKind string

// Recognized URL kinds.
const (
	KindVideoFile    URLKind = "video_file"
	KindCloudStorage URLKind = "cloud_storage"
	KindOther        URLKind = "other"
)

// videoExtensions are file extensions treated as directly downloadable video.
var videoExtensions = map[string]bool{
	"mp4": true, "m4v": true, "mov": true, "webm": true,
	"mkv": true, "avi": true, "ts": true,
}

// cloudHosts are hosting domains that serve course media behind their own
// players or share links rather than as plain files.
var cloudHosts = []string{
	"drive.google.com",
	"docs.google.com",
	"dropbox.com",
	"onedrive.live.com",
	"s3.amazonaws.com",
	"vimeo.com",
	"wistia.com",
	"wistia.net",
	"youtube.com",
	"youtu.be",
}

// VideoMeta captures metadata for a lesson's video. Only the URL and derived
// fields are recorded; the media itself is never downloaded.
type VideoMeta struct {
	URL       string  `json:"url"`
	Kind      URLKind `json:"kind"`
	Filename  string  `json:"filename,omitempty"`
	Extension string  `json:"extension,omitempty"`
	Poster    string  `json:"poster,omitempty"`
}

// Attachment is a downloadable file link captured from a lesson's detail
// panel.
type Attachment struct {
	URL       string `json:"url"`
	Filename  string `json:"filename,omitempty"`
	Extension string `json:"extension,omitempty"`
	Label     string `json:"label,omitempty"`
}

// FilenameFromURL returns the last path segment of a URL with any query or
// fragment stripped and percent-escapes decoded. Returns "" when the URL has
// no usable path.
func FilenameFromURL(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return ""
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name
}

// ExtensionFromURL returns the lower-case file extension of the URL's path,
// without the leading dot, or "" when there is none.
func ExtensionFromURL(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	ext := strings.TrimPrefix(path.Ext(u.Path), ".")
	return strings.ToLower(ext)
}

// SniffURLKind classifies a URL as a direct video file, a cloud-storage
// share, or neither.
func SniffURLKind(rawURL string) URLKind {
	if videoExtensions[ExtensionFromURL(rawURL)] {
		return KindVideoFile
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return KindOther
	}
	host := strings.ToLower(u.Hostname())
	for _, cloud := range cloudHosts {
		if host == cloud || strings.HasSuffix(host, "."+cloud) {
			return KindCloudStorage
		}
	}
	return KindOther
}

// NewVideoMeta derives a VideoMeta from a captured player URL.
func NewVideoMeta(rawURL string) *VideoMeta {
	return &VideoMeta{
		URL:       rawURL,
		Kind:      SniffURLKind(rawURL),
		Filename:  FilenameFromURL(rawURL),
		Extension: ExtensionFromURL(rawURL),
	}
}

// DedupeAttachments removes attachments whose URL already appeared earlier
// in the slice, preserving first-occurrence order.
func DedupeAttachments(attachments []Attachment) []Attachment {
	if len(attachments) < 2 {
		return attachments
	}
	seen := make(map[string]bool, len(attachments))
	out := attachments[:0:0]
	for _, a := range attachments {
		if seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		out = append(out, a)
	}
	return out
}

// ContentHash computes a stable fingerprint of extracted content using
// xxhash. Used to detect unchanged lessons across repeated runs.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
