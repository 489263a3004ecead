package naming

import (
	"regexp"
	"strings"
	"testing"

	"github.com/catdl/catdl/internal/models"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		entry models.CatalogEntry
		ext   string
		want  string
	}{
		{
			name:  "accents and punctuation",
			entry: models.CatalogEntry{Title: "T1xC7 - Veureu una cosa al·lucinant i màgica!", EpisodeNumber: 7, ShowName: "Tv show name"},
			ext:   "mp4",
			want:  "7_t1xc7_veureu_una_cosa_allucinant_i_magica.mp4",
		},
		{
			name:  "ova show",
			entry: models.CatalogEntry{Title: "T1xC7 - Veureu una cosa al·lucinant!", EpisodeNumber: 7, ShowName: "Tv show name (OVA)"},
			ext:   "mp4",
			want:  "ova_7_t1xc7_veureu_una_cosa_allucinant.mp4",
		},
		{
			name:  "chapter marker with number",
			entry: models.CatalogEntry{Title: "Capítol 12 - El retorn", EpisodeNumber: 12, ShowName: "Bola de Drac"},
			ext:   "vtt",
			want:  "12_el_retorn.vtt",
		},
		{
			name:  "chapter marker without number",
			entry: models.CatalogEntry{Title: "Capítol: El retorn", EpisodeNumber: 3, ShowName: "Bola de Drac"},
			ext:   "mp4",
			want:  "3_el_retorn.mp4",
		},
		{
			name:  "chapter marker only",
			entry: models.CatalogEntry{Title: "Capítol 4", EpisodeNumber: 4, ShowName: "Bola de Drac"},
			ext:   "mp4",
			want:  "4_.mp4",
		},
		{
			name:  "marker not at start is kept",
			entry: models.CatalogEntry{Title: "El capítol 4", EpisodeNumber: 4, ShowName: "Bola de Drac"},
			ext:   "mp4",
			want:  "4_el_capitol_4.mp4",
		},
		{
			name:  "hyphen and whitespace runs collapse",
			entry: models.CatalogEntry{Title: "  Un -- dos\t\ttres---quatre  ", EpisodeNumber: 1, ShowName: "x"},
			ext:   "mp4",
			want:  "1_un_dos_tres_quatre.mp4",
		},
		{
			name:  "empty title",
			entry: models.CatalogEntry{Title: "", EpisodeNumber: 9, ShowName: "x"},
			ext:   "mp4",
			want:  "9_.mp4",
		},
		{
			name:  "non latin script is romanized",
			entry: models.CatalogEntry{Title: "北京", EpisodeNumber: 2, ShowName: "x"},
			ext:   "mp4",
			want:  "2_bei_jing.mp4",
		},
		{
			name:  "non breaking space separates words",
			entry: models.CatalogEntry{Title: "una\u00a0cosa", EpisodeNumber: 1, ShowName: "x"},
			ext:   "mp4",
			want:  "1_una_cosa.mp4",
		},
		{
			name:  "en dash separates words",
			entry: models.CatalogEntry{Title: "Drac\u2013Ball", EpisodeNumber: 1, ShowName: "x"},
			ext:   "mp4",
			want:  "1_drac_ball.mp4",
		},
		{
			name:  "em dash separates words",
			entry: models.CatalogEntry{Title: "T1xC7\u2014Veureu", EpisodeNumber: 7, ShowName: "x"},
			ext:   "mp4",
			want:  "7_t1xc7_veureu.mp4",
		},
		{
			name:  "leading digits without marker are kept",
			entry: models.CatalogEntry{Title: "1984", EpisodeNumber: 3, ShowName: "x"},
			ext:   "mp4",
			want:  "3_1984.mp4",
		},
		{
			name:  "letters without decomposition",
			entry: models.CatalogEntry{Title: "Straße Ærø Łódź", EpisodeNumber: 5, ShowName: "x"},
			ext:   "mp4",
			want:  "5_strasse_aero_lodz.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.entry, tt.ext); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilename_OVAMarkerIsCaseInsensitive(t *testing.T) {
	for _, show := range []string{"Show (OVA)", "show ova", "Show OvA special", "Novabanda"} {
		got := Filename(models.CatalogEntry{Title: "Títol", EpisodeNumber: 1, ShowName: show}, "mp4")
		if !strings.HasPrefix(got, OVAPrefix) {
			t.Errorf("show %q: expected %q prefix, got %q", show, OVAPrefix, got)
		}
	}

	for _, show := range []string{"Bola de Drac", "", "O V A", "Ovella negra"} {
		got := Filename(models.CatalogEntry{Title: "Títol", EpisodeNumber: 1, ShowName: show}, "mp4")
		if strings.HasPrefix(got, OVAPrefix) {
			t.Errorf("show %q: unexpected %q prefix in %q", show, OVAPrefix, got)
		}
	}
}

func TestFilename_Shape(t *testing.T) {
	shape := regexp.MustCompile(`^(ova_)?\d+_[a-z0-9_]*\.\w+$`)
	titles := []string{
		"T1xC7 - Veureu una cosa al·lucinant i màgica!",
		"___",
		"---",
		"   ",
		"¿¡Què?!",
		"Capítol 1",
		"capitol_2_",
		"Ça va? Ñandú, Øresund & Co.",
		"\xff\xfe invalid utf8",
		"Emoji 🐉 drac",
		"MAJÚSCULES I minúscules",
	}

	for _, title := range titles {
		for _, show := range []string{"Show", "Show OVA"} {
			got := Filename(models.CatalogEntry{Title: title, EpisodeNumber: 42, ShowName: show}, "mp4")
			if !shape.MatchString(got) {
				t.Errorf("title %q: %q does not match %s", title, got, shape)
			}

			base := strings.TrimSuffix(got, ".mp4")
			base = strings.TrimPrefix(base, OVAPrefix)
			base = strings.TrimPrefix(base, "42_")
			if strings.HasPrefix(base, "_") || strings.HasSuffix(base, "_") {
				t.Errorf("title %q: cleaned title %q has leading or trailing underscore", title, base)
			}
		}
	}
}

func TestFilename_Deterministic(t *testing.T) {
	entry := models.CatalogEntry{Title: "Els Súpers - Capítol 3", EpisodeNumber: 3, ShowName: "Els Súpers"}
	first := Filename(entry, "mp4")
	for i := 0; i < 10; i++ {
		if got := Filename(entry, "mp4"); got != first {
			t.Fatalf("Filename() not deterministic: %q vs %q", got, first)
		}
	}
}

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"màgica", "magica"},
		{"al·lucinant", "allucinant"},
		{"Ñandú", "Nandu"},
		{"œuvre", "oeuvre"},
		{"plain ascii 123", "plain ascii 123"},
		{"una\u00a0cosa", "una cosa"},
		{"Drac\u2013Ball", "Drac-Ball"},
		{"Straße", "Strasse"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
