package layout

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	"github.com/tsawler/vita/font"
)

// fixedWidth measures every rune as size/2 wide
func fixedWidth(text string, size float64) float64 {
	return float64(len([]rune(text))) * size / 2
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"empty", "", 100, nil},
		{"whitespace only", " \t\n ", 100, nil},
		{"fits on one line", "hello world", 100, []string{"hello world"}},
		{"exact fit", "abcd", 20, []string{"abcd"}},
		{"wraps at word boundary", "aaa bbb ccc", 35, []string{"aaa bbb", "ccc"}},
		{"collapses whitespace", "aaa   \n bbb", 100, []string{"aaa bbb"}},
		{"breaks long word", "abcdefgh", 20, []string{"abcd", "efgh"}},
		{"long word after short", "ab abcdefgh", 20, []string{"ab", "abcd", "efgh"}},
		{"long word tail continues", "abcdef gh", 20, []string{"abcd", "ef", "gh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, 10, tt.maxWidth, fixedWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWrapTextRuneWiderThanLine(t *testing.T) {
	got := WrapText("abc", 10, 2, fixedWidth)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WrapText() = %q, want %q", got, want)
	}
}

// randomText builds whitespace-separated lowercase words
func randomText(r *rand.Rand, maxWords, maxWordLen int) string {
	n := r.Intn(maxWords + 1)
	words := make([]string, n)
	for i := range words {
		b := make([]byte, 1+r.Intn(maxWordLen))
		for j := range b {
			b[j] = byte('a' + r.Intn(26))
		}
		words[i] = string(b)
	}
	seps := []string{" ", "  ", "\t", "\n"}
	return strings.Join(words, seps[r.Intn(len(seps))])
}

func TestWrapTextProperties(t *testing.T) {
	measure := font.Standard(font.Helvetica).Measure()

	property := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		text := randomText(r, 40, 30)
		size := 8 + r.Float64()*6
		maxWidth := 30 + r.Float64()*400

		lines := WrapText(text, size, maxWidth, measure)

		for _, line := range lines {
			if line == "" || measure(line, size) > maxWidth {
				t.Logf("seed %d: line %q is %g wide, max %g", seed, line, measure(line, size), maxWidth)
				return false
			}
		}

		// No characters lost or reordered.
		flat := strings.Join(strings.Fields(text), "")
		if strings.ReplaceAll(strings.Join(lines, ""), " ", "") != flat {
			t.Logf("seed %d: content changed", seed)
			return false
		}

		// Same input, same output.
		return reflect.DeepEqual(lines, WrapText(text, size, maxWidth, measure))
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}

func TestWrapTextFewestLines(t *testing.T) {
	// Joining any two adjacent lines must overflow, otherwise the greedy
	// fill left room it could have used.
	property := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		text := randomText(r, 30, 6)
		lines := WrapText(text, 10, 120, fixedWidth)
		for i := 1; i < len(lines); i++ {
			first := strings.Fields(lines[i])[0]
			if fixedWidth(lines[i-1]+" "+first, 10) <= 120 {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
