package mock

import (
	"strings"
	"testing"

	"github.com/vibescout/vibescout/internal/model"
)

func TestVenues_AdaptsToLocation(t *testing.T) {
	p := NewProvider()
	venues := p.Venues(model.SearchParameters{Location: "Lagos", Budget: 50, Occasion: "birthday"})

	if len(venues) == 0 {
		t.Fatal("fallback provider must return a non-empty venue list")
	}

	for _, v := range venues {
		if !strings.Contains(v.Name, "Lagos") {
			t.Errorf("venue name %q should carry the requested location", v.Name)
		}
		if v.Location.Address != "Lagos City Center" {
			t.Errorf("address should be interpolated, got %q", v.Location.Address)
		}
		if !strings.HasPrefix(v.VibeSummary, "(Offline Mode) ") {
			t.Errorf("summary should be marked offline, got %q", v.VibeSummary)
		}
	}
}

func TestVenues_DoesNotDoubleTagLocation(t *testing.T) {
	p := NewProvider()
	venues := p.Venues(model.SearchParameters{Location: "Winter"})

	// "The Winter Terrace" already contains the location — no "(Winter Edition)" suffix.
	if got := venues[0].Name; got != "The Winter Terrace" {
		t.Errorf("expected name left alone when it already contains the location, got %q", got)
	}
}

func TestVenues_BaseDataNotMutated(t *testing.T) {
	p := NewProvider()
	first := p.Venues(model.SearchParameters{Location: "Accra"})
	second := p.Venues(model.SearchParameters{Location: "Nairobi"})

	if strings.Contains(second[0].Name, "Accra") {
		t.Errorf("base data leaked a previous request's location: %q", second[0].Name)
	}
	if strings.HasPrefix(first[0].VibeSummary, "(Offline Mode) (Offline Mode) ") {
		t.Errorf("summary prefix applied twice: %q", first[0].VibeSummary)
	}
}
