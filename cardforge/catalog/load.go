package catalog

import (
	"embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed data/cards.toml data/recipes.toml
var dataFS embed.FS

type cardEntry struct {
	ID          int64  `toml:"id"`
	Title       string `toml:"title"`
	Category    string `toml:"category"`
	Description string `toml:"description"`
	Str         int    `toml:"str"`
	Spd         int    `toml:"spd"`
	Def         int    `toml:"def"`
}

type cardsFile struct {
	Cards []cardEntry `toml:"cards"`
}

type recipeResultEntry struct {
	ID          int64  `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

type recipeEntry struct {
	Inputs []int64           `toml:"inputs"`
	Result recipeResultEntry `toml:"result"`
}

type recipesFile struct {
	Recipes []recipeEntry `toml:"recipes"`
}

// LoadEmbedded builds the catalog from the data files compiled into the
// binary. This is the default catalog source.
func LoadEmbedded() (*Catalog, error) {
	cardsRaw, err := dataFS.ReadFile("data/cards.toml")
	if err != nil {
		return nil, fmt.Errorf("catalog: read embedded cards: %w", err)
	}
	recipesRaw, err := dataFS.ReadFile("data/recipes.toml")
	if err != nil {
		return nil, fmt.Errorf("catalog: read embedded recipes: %w", err)
	}
	return Load(cardsRaw, recipesRaw)
}

// Load decodes TOML card and recipe data and builds a validated catalog.
func Load(cardsTOML, recipesTOML []byte) (*Catalog, error) {
	var cf cardsFile
	if err := toml.Unmarshal(cardsTOML, &cf); err != nil {
		return nil, fmt.Errorf("catalog: decode cards: %w", err)
	}
	var rf recipesFile
	if err := toml.Unmarshal(recipesTOML, &rf); err != nil {
		return nil, fmt.Errorf("catalog: decode recipes: %w", err)
	}

	cards := make([]*BaseCard, 0, len(cf.Cards))
	for _, e := range cf.Cards {
		cards = append(cards, &BaseCard{
			ID:          e.ID,
			Title:       e.Title,
			Category:    Category(e.Category),
			Description: e.Description,
			Stats:       Stats{Str: e.Str, Spd: e.Spd, Def: e.Def},
		})
	}

	recipes := make([]*Recipe, 0, len(rf.Recipes))
	for _, e := range rf.Recipes {
		if len(e.Inputs) != 2 {
			return nil, fmt.Errorf("catalog: recipe %q needs exactly 2 inputs, got %d", e.Result.Title, len(e.Inputs))
		}
		recipes = append(recipes, &Recipe{
			InputA: e.Inputs[0],
			InputB: e.Inputs[1],
			Result: RecipeResult{
				TemplateID:  e.Result.ID,
				Title:       e.Result.Title,
				Description: e.Result.Description,
			},
		})
	}

	return New(cards, recipes)
}
