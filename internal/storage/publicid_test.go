package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{
			name: "versioned url",
			url:  "https://host/x/upload/v123/folder/file.png",
			want: "folder/file",
			ok:   true,
		},
		{
			name: "unversioned url",
			url:  "https://host/x/upload/folder/file.jpg",
			want: "folder/file",
			ok:   true,
		},
		{
			name: "no upload segment",
			url:  "no-upload-segment",
			want: "",
			ok:   false,
		},
		{
			name: "deeply nested folders",
			url:  "https://res.example.com/demo/video/upload/v1700000000/shop/clips/intro.mp4",
			want: "shop/clips/intro",
			ok:   true,
		},
		{
			name: "no version prefix single segment",
			url:  "https://host/image/upload/avatar.webp",
			want: "avatar",
			ok:   true,
		},
		{
			name: "upload as last segment",
			url:  "https://host/x/upload",
			want: "",
			ok:   false,
		},
		{
			name: "version-like folder not stripped twice",
			url:  "https://host/x/upload/v1/v2/file.png",
			want: "v2/file",
			ok:   true,
		},
		{
			name: "empty string",
			url:  "",
			want: "",
			ok:   false,
		},
		{
			name: "local path without upload segment",
			url:  "/uploads/shoe_12345_abcd.png",
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PublicIDFromURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalPublicID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{
			name: "served local file",
			url:  "/uploads/shoe_123_ab.png",
			want: "shoe_123_ab",
			ok:   true,
		},
		{
			name: "extensionless local file",
			url:  "/uploads/readme",
			want: "readme",
			ok:   true,
		},
		{
			name: "remote url is not local",
			url:  "https://host/x/upload/v1/folder/file.png",
			want: "",
			ok:   false,
		},
		{
			name: "nested path rejected",
			url:  "/uploads/folder/file.png",
			want: "",
			ok:   false,
		},
		{
			name: "bare prefix",
			url:  "/uploads/",
			want: "",
			ok:   false,
		},
		{
			name: "empty string",
			url:  "",
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LocalPublicID(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
