package collection

import (
	"testing"
	"time"

	"github.com/forgelabs/cardforge/cardforge/catalog"
	"github.com/forgelabs/cardforge/cardforge/config"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("catalog.LoadEmbedded() error = %v", err)
	}
	return cat
}

func steamBurst() *catalog.FusionCard {
	return &catalog.FusionCard{
		TemplateID: 101,
		Title:      "Steam Burst",
		Category:   catalog.CategoryFusion,
		Stats:      catalog.Stats{Str: 99, Spd: 58, Def: 26},
		SourceIDs:  [2]int64{1, 5},
	}
}

func TestManager_All(t *testing.T) {
	cat := loadCatalog(t)
	m := NewManager(cat)

	all := m.All()
	if len(all) != cat.Len() {
		t.Fatalf("All() len = %d, want %d", len(all), cat.Len())
	}

	m.AddFused(steamBurst())
	all = m.All()
	if len(all) != cat.Len()+1 {
		t.Fatalf("All() len after fuse = %d, want %d", len(all), cat.Len()+1)
	}
	// Fused cards follow the catalog cards.
	if all[len(all)-1].CardTitle() != "Steam Burst" {
		t.Errorf("last entry = %q, want Steam Burst", all[len(all)-1].CardTitle())
	}
}

func TestManager_Search(t *testing.T) {
	m := NewManager(loadCatalog(t))

	tests := []struct {
		name   string
		query  string
		filter catalog.Category
		want   []string
	}{
		{
			// "Blizzard" is an Ice card but no title match.
			name:   "SubstringIgnoresCategoryNames",
			query:  "ice",
			filter: catalog.CategoryAll,
			want:   []string{"Ice Spike", "Ice Armor"},
		},
		{
			name:   "CaseInsensitive",
			query:  "FIRE",
			filter: catalog.CategoryAll,
			want:   []string{"Fire Sky", "Fire Shield"},
		},
		{
			name:   "CategoryOnly",
			query:  "",
			filter: catalog.CategoryEarth,
			want:   []string{"Stone Wall", "Earthquake", "Boulder Toss"},
		},
		{
			name:   "QueryAndCategory",
			query:  "wall",
			filter: catalog.CategoryMagic,
			want:   []string{"Magic Wall"},
		},
		{
			name:   "NoMatch",
			query:  "dragon",
			filter: catalog.CategoryAll,
			want:   nil,
		},
		{
			name:   "EmptyQueryAllCategories",
			query:  "",
			filter: catalog.CategoryAll,
			want: []string{
				"Fire Sky", "Fire Shield", "Burning Flames", "Ice Spike", "Blizzard",
				"Frost Nova", "Stone Wall", "Earthquake", "Magic Missile", "Magic Wall",
				"Heal Area", "Kick", "Face Punch", "Slash", "Boulder Toss",
				"Ice Armor", "Phoenix Rise", "Shadow Step",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Search(tt.query, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q, %s) returned %d cards, want %d", tt.query, tt.filter, len(got), len(tt.want))
			}
			for i, c := range got {
				if c.CardTitle() != tt.want[i] {
					t.Errorf("Search(%q, %s)[%d] = %q, want %q", tt.query, tt.filter, i, c.CardTitle(), tt.want[i])
				}
			}
		})
	}
}

func TestManager_Search_SeesNewFusions(t *testing.T) {
	m := NewManager(loadCatalog(t))

	if got := m.Search("steam", catalog.CategoryAll); len(got) != 0 {
		t.Fatalf("Search(steam) before fuse = %d cards, want 0", len(got))
	}

	// The cached empty result must not survive the fusion.
	m.AddFused(steamBurst())

	got := m.Search("steam", catalog.CategoryAll)
	if len(got) != 1 || got[0].CardTitle() != "Steam Burst" {
		t.Fatalf("Search(steam) after fuse = %v, want the fused card", got)
	}

	if got := m.Search("steam", catalog.CategoryFusion); len(got) != 1 {
		t.Errorf("Search(steam, Fusion) = %d cards, want 1", len(got))
	}
	if got := m.Search("steam", catalog.CategoryFire); len(got) != 0 {
		t.Errorf("Search(steam, Fire) = %d cards, want 0", len(got))
	}
}

func TestManager_Search_CacheExpires(t *testing.T) {
	m := NewManager(loadCatalog(t))
	current := time.Now()
	m.now = func() time.Time { return current }

	if got := m.Search("steam", catalog.CategoryAll); len(got) != 0 {
		t.Fatalf("Search(steam) = %d cards, want 0", len(got))
	}

	// Grow the fused list directly so the cached miss is not purged.
	fc := steamBurst()
	fc.ID = 200
	m.fused = append(m.fused, fc)

	// Inside the expiration window the stale cached result is served.
	if got := m.Search("steam", catalog.CategoryAll); len(got) != 0 {
		t.Fatalf("Search(steam) within window = %d cards, want cached 0", len(got))
	}

	current = current.Add(config.CacheExpiration + time.Second)
	got := m.Search("steam", catalog.CategoryAll)
	if len(got) != 1 || got[0].CardTitle() != "Steam Burst" {
		t.Fatalf("Search(steam) after expiry = %v, want recomputed result", got)
	}
}

func TestManager_AddFused_MintsMonotonicIDs(t *testing.T) {
	cat := loadCatalog(t)
	m := NewManager(cat)

	seen := make(map[int64]bool)
	var prev int64
	for i := 0; i < 500; i++ {
		stored := m.AddFused(steamBurst())
		if stored.ID <= cat.HighestID() {
			t.Fatalf("minted id %d collides with catalog id space (max %d)", stored.ID, cat.HighestID())
		}
		if seen[stored.ID] {
			t.Fatalf("duplicate instance id %d", stored.ID)
		}
		if stored.ID <= prev {
			t.Fatalf("instance id %d not monotonic after %d", stored.ID, prev)
		}
		seen[stored.ID] = true
		prev = stored.ID
	}
}

func TestManager_AddFused_CopiesInput(t *testing.T) {
	m := NewManager(loadCatalog(t))

	in := steamBurst()
	stored := m.AddFused(in)

	if in.ID != 0 {
		t.Errorf("AddFused mutated its input: id = %d", in.ID)
	}
	if stored == in {
		t.Error("AddFused stored the input pointer instead of a copy")
	}
}

func TestManager_CopiesAvailable(t *testing.T) {
	cat := loadCatalog(t)
	m := NewManager(cat)

	base, _ := cat.Card(9)
	if got := m.CopiesAvailable(base); got != 3 {
		t.Errorf("CopiesAvailable(base) = %d, want 3", got)
	}

	first := m.AddFused(steamBurst())
	if got := m.CopiesAvailable(first); got != 1 {
		t.Errorf("CopiesAvailable(fused) after 1 fuse = %d, want 1", got)
	}

	second := m.AddFused(steamBurst())
	if got := m.CopiesAvailable(second); got != 2 {
		t.Errorf("CopiesAvailable(fused) after 2 fuses = %d, want 2", got)
	}

	// Prior instances stay queryable and unaffected.
	if got := m.CopiesAvailable(first); got != 2 {
		t.Errorf("CopiesAvailable(first instance) = %d, want 2", got)
	}
	if got := m.FusedCount(999); got != 0 {
		t.Errorf("FusedCount(unknown template) = %d, want 0", got)
	}
}

func TestManager_Fused(t *testing.T) {
	m := NewManager(loadCatalog(t))

	a := m.AddFused(steamBurst())
	b := m.AddFused(steamBurst())

	fused := m.Fused()
	if len(fused) != 2 {
		t.Fatalf("Fused() len = %d, want 2", len(fused))
	}
	if fused[0].ID != a.ID || fused[1].ID != b.ID {
		t.Errorf("Fused() order = [%d %d], want [%d %d]", fused[0].ID, fused[1].ID, a.ID, b.ID)
	}
}
