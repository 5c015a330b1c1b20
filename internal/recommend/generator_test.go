// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package recommend

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/tomtom215/curator/internal/catalog"
)

func byStrategy(cands []CandidateCarousel, s Strategy) []CandidateCarousel {
	var out []CandidateCarousel
	for i := range cands {
		if cands[i].Strategy == s {
			out = append(out, cands[i])
		}
	}
	return out
}

func TestGenerate_AcceptanceScenario(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", genre("Action")),
		item("b", "B", genre("Action")),
		item("d", "D", genre("Action")),
	)
	s := testSession(t)
	st := record(t, s, cat, "a", ActionLike, "")

	if w := st.Interests.Weight(InterestKey{Dimension: catalog.DimensionGenre, Value: "Action"}); !approxEqual(w, 0.3) {
		t.Errorf("genre:Action = %v, want 0.3", w)
	}

	cands := NewGenerator(DefaultConfig()).Generate(cat, st)
	liked := byStrategy(cands, StrategyLiked)
	if len(liked) != 1 {
		t.Fatalf("liked candidates = %v, want exactly one", candidateTitles(liked))
	}
	c := liked[0]
	if c.Title != "Because you liked A" {
		t.Errorf("title = %q", c.Title)
	}
	if got := itemTitles(c.Items); !slices.Equal(got, []string{"B", "D"}) {
		t.Errorf("items = %v, want [B D]", got)
	}
	if c.ID != "rec-liked-a" || c.Position != 1 || c.Type != CandidateType {
		t.Errorf("candidate header = %+v", c)
	}
	if !slices.Equal(c.Platforms, []string{"all"}) || c.RecommendationType != "Personalized" || c.AvodSvod != "SVOD" {
		t.Errorf("candidate labels = %v %q %q", c.Platforms, c.RecommendationType, c.AvodSvod)
	}
}

func TestGenerate_MinimumPoolSize(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", genre("Action")),
		item("b", "B", genre("Action")),
	)
	s := testSession(t)
	st := record(t, s, cat, "a", ActionLike, "")

	cands := NewGenerator(DefaultConfig()).Generate(cat, st)
	if len(cands) != 0 {
		t.Errorf("expected no candidates for single-item pools, got %v", candidateTitles(cands))
	}
}

func TestGenerate_RequiresLoadedSessionAndActions(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", genre("Action")),
		item("b", "B", genre("Action")),
		item("c", "C", genre("Action")),
	)
	gen := NewGenerator(DefaultConfig())
	acc := NewAccumulator(DefaultConfig())

	empty := acc.Empty(testProfile(), "ww-home", 1)
	if got := gen.Generate(cat, empty); got == nil || len(got) != 0 {
		t.Errorf("empty log: got %v, want empty non-nil slice", got)
	}

	noPage, _ := acc.Record(acc.Empty(testProfile(), "", 1), &cat.Items()[0], ActionLike, "")
	if got := gen.Generate(cat, noPage); len(got) != 0 {
		t.Errorf("no page: got %v", candidateTitles(got))
	}

	noProfile, _ := acc.Record(acc.Empty(nil, "ww-home", 1), &cat.Items()[0], ActionLike, "")
	if got := gen.Generate(cat, noProfile); len(got) != 0 {
		t.Errorf("no profile: got %v", candidateTitles(got))
	}
}

func TestGenerate_WatchedUsesThreeMostRecentTitles(t *testing.T) {
	t.Parallel()

	var items []catalog.ContentItem
	for _, g := range []string{"G1", "G2", "G3", "G4"} {
		items = append(items,
			item("w-"+g, "W"+g, genre(g)),
			item("p1-"+g, "P1"+g, genre(g)),
			item("p2-"+g, "P2"+g, genre(g)),
		)
	}
	cat := newCatalog(t, items...)
	s := testSession(t)
	var st *State
	for _, g := range []string{"G1", "G2", "G3", "G4"} {
		st = record(t, s, cat, "w-"+g, ActionPlay, Completion25)
	}
	// A repeated play must not count as another distinct title.
	st = record(t, s, cat, "w-G4", ActionPlay, Completion50)

	watched := byStrategy(NewGenerator(DefaultConfig()).Generate(cat, st), StrategyWatched)
	want := []string{"Because you watched WG4", "Because you watched WG3", "Because you watched WG2"}
	if got := candidateTitles(watched); !slices.Equal(got, want) {
		t.Errorf("watched = %v, want %v", got, want)
	}
}

func TestGenerate_ActorStrategy(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", map[string][]string{"genre": {"Drama"}, "cast": {"Jane Doe"}}),
		item("b", "B", map[string][]string{"genre": {"Comedy"}, "cast": {"Jane Doe"}}),
		item("c", "C", map[string][]string{"genre": {"Horror"}, "cast": {"Jane Doe"}}),
		item("d", "D", map[string][]string{"genre": {"Horror"}, "cast": {"Someone Else"}}),
	)
	s := testSession(t)
	record(t, s, cat, "a", ActionLike, "")
	st := record(t, s, cat, "b", ActionPlay, Completion50)

	cands := NewGenerator(DefaultConfig()).Generate(cat, st)
	actors := byStrategy(cands, StrategyActor)
	if len(actors) != 1 {
		t.Fatalf("actor candidates = %v, want one", candidateTitles(actors))
	}
	c := actors[0]
	if c.Title != "Because you like Jane Doe" || c.ID != "rec-actor-JaneDoe" {
		t.Errorf("candidate = %q (%s)", c.Title, c.ID)
	}
	// Only high-interest titles are excluded; B was merely sampled.
	if got := itemTitles(c.Items); !slices.Equal(got, []string{"B", "C"}) {
		t.Errorf("items = %v, want [B C]", got)
	}

	for i := range cands {
		if cands[i].Title == "More in Jane Doe" {
			t.Error("cast dimension must not feed the interest strategy")
		}
	}
}

func TestGenerate_NearCompletePlayIsHighInterest(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", map[string][]string{"cast": {"Lead"}}),
		item("b", "B", map[string][]string{"cast": {"Lead"}}),
		item("c", "C", map[string][]string{"cast": {"Lead"}}),
	)
	s := testSession(t)

	st := record(t, s, cat, "a", ActionPlay, Completion75)
	if got := byStrategy(NewGenerator(DefaultConfig()).Generate(cat, st), StrategyActor); len(got) != 0 {
		t.Errorf("75%% play should not seed actors, got %v", candidateTitles(got))
	}

	st = record(t, s, cat, "a", ActionPlay, Completion85)
	got := byStrategy(NewGenerator(DefaultConfig()).Generate(cat, st), StrategyActor)
	if len(got) != 1 || !slices.Equal(itemTitles(got[0].Items), []string{"B", "C"}) {
		t.Errorf(">85%% play should seed Lead with [B C], got %+v", got)
	}
}

func TestGenerate_InterestStrategy(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", map[string][]string{"genre": {"Sci Fi"}, "mood": {"Dark"}}),
		item("b", "B", map[string][]string{"genre": {"Sci Fi"}, "mood": {"Dark"}}),
		item("c", "C", map[string][]string{"genre": {"Sci Fi"}, "mood": {"Dark"}}),
	)
	s := testSession(t)
	st := record(t, s, cat, "a", ActionDownload, "")

	cands := NewGenerator(DefaultConfig()).Generate(cat, st)
	interest := byStrategy(cands, StrategyInterest)
	ids := make([]string, len(interest))
	for i := range interest {
		ids[i] = interest[i].ID
	}
	if !slices.Equal(ids, []string{"rec-interest-genre-SciFi", "rec-interest-mood-Dark"}) {
		t.Errorf("interest ids = %v", ids)
	}
	for i := range cands {
		if cands[i].Position != i+1 {
			t.Errorf("candidate %d has position %d", i, cands[i].Position)
		}
	}

	cfg := DefaultConfig()
	cfg.Generation.DimensionEligibility["mood"] = false
	interest = byStrategy(NewGenerator(cfg).Generate(cat, st), StrategyInterest)
	if got := candidateTitles(interest); !slices.Equal(got, []string{"More in Sci Fi"}) {
		t.Errorf("with mood ineligible = %v", got)
	}
}

func TestGenerate_InterestBelowThresholdIgnored(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", genre("Drama")),
		item("b", "B", genre("Drama")),
		item("c", "C", genre("Drama")),
	)
	s := testSession(t)
	st := record(t, s, cat, "a", ActionShare, "")

	if got := NewGenerator(DefaultConfig()).Generate(cat, st); len(got) != 0 {
		t.Errorf("zero-weight profile produced %v", candidateTitles(got))
	}
}

func TestGenerate_StrategyPriorityOnTitleCollision(t *testing.T) {
	t.Parallel()

	// genre:Drama and mood:Drama both synthesize "More in Drama".
	cat := newCatalog(t,
		item("a", "A", map[string][]string{"genre": {"Drama"}, "mood": {"Drama"}}),
		item("b", "B", genre("Drama")),
		item("c", "C", genre("Drama")),
		item("e", "E", map[string][]string{"mood": {"Drama"}}),
		item("f", "F", map[string][]string{"mood": {"Drama"}}),
	)
	s := testSession(t)
	st := record(t, s, cat, "a", ActionLike, "")

	cands := NewGenerator(DefaultConfig()).Generate(cat, st)
	var drama []CandidateCarousel
	for i := range cands {
		if cands[i].Title == "More in Drama" {
			drama = append(drama, cands[i])
		}
	}
	if len(drama) != 1 {
		t.Fatalf("expected one 'More in Drama', got %d", len(drama))
	}
	if drama[0].ID != "rec-interest-genre-Drama" {
		t.Errorf("kept %s, want the higher-priority genre candidate", drama[0].ID)
	}
}

func TestPass_FirstWriterWins(t *testing.T) {
	t.Parallel()

	pool := []catalog.ContentItem{item("x", "X", nil), item("y", "Y", nil)}
	p := &pass{
		ctx:     context.Background(),
		g:       NewGenerator(DefaultConfig()),
		claimed: map[string]struct{}{},
	}
	p.offer(StrategyLiked, "first", "Shared Title", pool)
	p.offer(StrategyActor, "second", "Shared Title", pool)
	p.offer(StrategyInterest, "third", "Other", pool[:1])

	if len(p.out) != 1 || p.out[0].ID != "first" {
		t.Errorf("accepted = %+v, want only the first", p.out)
	}
}

func TestGenerate_SkipsUnresolvableAndUsesTitleFallback(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", genre("Action")),
		item("b", "B", genre("Action")),
		item("c", "C", genre("Action")),
		item("n", "No Genre", map[string][]string{"mood": {"Calm"}}),
	)
	acc := NewAccumulator(DefaultConfig())
	st := acc.Empty(testProfile(), "ww-home", 1)
	ghost := item("ghost", "Ghost", genre("Action"))
	st, _ = acc.Record(st, &ghost, ActionLike, "")
	noGenre, _ := cat.ByID("n")
	st, _ = acc.Record(st, noGenre, ActionLike, "")
	// Entry without a content id resolves by title.
	legacy := item("", "A", genre("Action"))
	st, _ = acc.Record(st, &legacy, ActionLike, "")

	liked := byStrategy(NewGenerator(DefaultConfig()).Generate(cat, st), StrategyLiked)
	if got := candidateTitles(liked); !slices.Equal(got, []string{"Because you liked A"}) {
		t.Errorf("liked = %v", got)
	}
	if len(liked) == 1 && !slices.Equal(itemTitles(liked[0].Items), []string{"B", "C"}) {
		t.Errorf("items = %v, want [B C]", itemTitles(liked[0].Items))
	}
}

func TestGenerate_PoolCappedAtLimit(t *testing.T) {
	t.Parallel()

	items := []catalog.ContentItem{item("seed", "Seed", genre("Action"))}
	for i := 0; i < 15; i++ {
		id := string(rune('a' + i))
		items = append(items, item(id, "Item "+id, genre("Action")))
	}
	cat := newCatalog(t, items...)
	s := testSession(t)
	st := record(t, s, cat, "seed", ActionLike, "")

	for _, c := range NewGenerator(DefaultConfig()).Generate(cat, st) {
		if c.ItemCount() != 10 {
			t.Errorf("%s has %d items, want 10", c.Title, c.ItemCount())
		}
		if c.Items[0].Title != "Item a" {
			t.Errorf("%s does not keep catalog order: %v", c.Title, itemTitles(c.Items))
		}
	}
}

func TestGenerateContext_Canceled(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t,
		item("a", "A", genre("Action")),
		item("b", "B", genre("Action")),
		item("c", "C", genre("Action")),
	)
	s := testSession(t)
	st := record(t, s, cat, "a", ActionLike, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewGenerator(DefaultConfig()).GenerateContext(ctx, cat, st); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	cat := catalog.Sample()
	s := testSession(t)
	items := cat.Items()
	for i := range items {
		if i%3 == 0 {
			s.RecordAction(&items[i], ActionLike, "")
		} else {
			s.RecordAction(&items[i], ActionPlay, Completion85)
		}
		if i == 5 {
			break
		}
	}
	gen := NewGenerator(DefaultConfig())
	first := gen.Generate(cat, s.Snapshot())
	second := gen.Generate(cat, s.Snapshot())
	if !slices.Equal(candidateTitles(first), candidateTitles(second)) {
		t.Errorf("generation differs between runs: %v vs %v", candidateTitles(first), candidateTitles(second))
	}
	seen := map[string]bool{}
	for i := range first {
		if seen[first[i].Title] {
			t.Errorf("duplicate title %q", first[i].Title)
		}
		seen[first[i].Title] = true
		if first[i].ItemCount() < 2 {
			t.Errorf("%q has %d items", first[i].Title, first[i].ItemCount())
		}
	}
}
