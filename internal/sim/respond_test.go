package sim

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/awerner/promptquest/internal/game"
)

func TestFailureResponseFromCannedSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		got := FailureResponse(rng)
		found := false
		for _, canned := range failureResponses {
			if got == canned {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unexpected failure response %q", got)
		}
	}
}

func TestSuccessResponseContainsKeywords(t *testing.T) {
	outcome := game.ParseOutcome("CONTAINS:summary,prompt engineering")
	got := SuccessResponse("summarize this article", outcome)

	if !outcome.Matches(got) {
		t.Fatalf("tailored response does not satisfy its own predicate: %q", got)
	}
	for _, kw := range outcome.Keywords {
		if !strings.Contains(strings.ToLower(got), strings.ToLower(kw)) {
			t.Fatalf("response missing keyword %q", kw)
		}
	}
}

func TestSuccessResponseBulletList(t *testing.T) {
	outcome := game.ParseOutcome("FORMAT:bullet points COUNT:3")
	got := SuccessResponse("list three facts", outcome)

	if !outcome.Matches(got) {
		t.Fatalf("bullet response does not satisfy its own predicate: %q", got)
	}
	if n := strings.Count(got, game.BulletMarker); n != 3 {
		t.Fatalf("expected 3 bullet markers, got %d", n)
	}
}

func TestTemplateResponsePrecedence(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"summary keyword", "Please SUMMARIZE this text", summaryResponse},
		{"summary before code", "write a code summary", summaryResponse},
		{"code keyword", "write javascript for sorting", codeResponse},
		{"story keyword", "tell me a creative story", storyResponse},
		{"no keyword", "hello there", genericResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := templateResponse(tt.prompt)
			if got != tt.want {
				t.Fatalf("templateResponse(%q) picked the wrong template", tt.prompt)
			}
		})
	}
}
