package extract

import "testing"

func TestVideoID(t *testing.T) {
	t.Run("supported reference shapes", func(t *testing.T) {
		cases := []struct {
			name string
			ref  string
			want string
		}{
			{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
			{"short link with query", "https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ"},
			{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
			{"watch url extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&index=2", "dQw4w9WgXcQ"},
			{"watch url no scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
			{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
			{"legacy v path", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
			{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
			{"bare id with whitespace", "  dQw4w9WgXcQ\n", "dQw4w9WgXcQ"},
			{"id with underscore and dash", "a_b-c_d-e_f", "a_b-c_d-e_f"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, ok := VideoID(tc.ref)
				if !ok {
					t.Fatalf("VideoID(%q) returned no match", tc.ref)
				}
				if got != tc.want {
					t.Errorf("VideoID(%q) = %q, want %q", tc.ref, got, tc.want)
				}
			})
		}
	})

	t.Run("unsupported references", func(t *testing.T) {
		cases := []struct {
			name string
			ref  string
		}{
			{"empty string", ""},
			{"blank line", "   "},
			{"too short", "abc123"},
			{"too long bare token", "dQw4w9WgXcQextra"},
			{"watch url short id", "https://www.youtube.com/watch?v=abc123"},
			{"watch url without v", "https://www.youtube.com/watch?list=PL123"},
			{"channel url", "https://www.youtube.com/channel/UC12345678901234567890"},
			{"unrelated url", "https://example.com/watch?v=dQw4w9WgXcQ"},
			{"prose", "not a video reference"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if got, ok := VideoID(tc.ref); ok {
					t.Errorf("VideoID(%q) = %q, want no match", tc.ref, got)
				}
			})
		}
	})

	t.Run("extraction is idempotent", func(t *testing.T) {
		refs := []string{
			"https://youtu.be/dQw4w9WgXcQ",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
			"dQw4w9WgXcQ",
		}

		for _, ref := range refs {
			id, ok := VideoID(ref)
			if !ok {
				t.Fatalf("VideoID(%q) returned no match", ref)
			}
			again, ok := VideoID(id)
			if !ok {
				t.Fatalf("VideoID(%q) returned no match on second pass", id)
			}
			if again != id {
				t.Errorf("VideoID(VideoID(%q)) = %q, want %q", ref, again, id)
			}
		}
	})
}

func TestPlaylistID(t *testing.T) {
	t.Run("extracts list parameter", func(t *testing.T) {
		cases := []struct {
			name string
			url  string
			want string
		}{
			{"playlist url", "https://www.youtube.com/playlist?list=PLabc123_-XYZ", "PLabc123_-XYZ"},
			{"watch url with list", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLabc123", "PLabc123"},
			{"watch later", "https://www.youtube.com/playlist?list=WL", "WL"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, ok := PlaylistID(tc.url)
				if !ok {
					t.Fatalf("PlaylistID(%q) returned no match", tc.url)
				}
				if got != tc.want {
					t.Errorf("PlaylistID(%q) = %q, want %q", tc.url, got, tc.want)
				}
			})
		}
	})

	t.Run("rejects urls without list parameter", func(t *testing.T) {
		for _, u := range []string{"", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "not a url"} {
			if got, ok := PlaylistID(u); ok {
				t.Errorf("PlaylistID(%q) = %q, want no match", u, got)
			}
		}
	})
}
