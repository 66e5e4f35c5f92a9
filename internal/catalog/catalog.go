// Package catalog holds the in-memory recipe catalog and its sampling
// rules.
package catalog

import (
	"math/rand/v2"

	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/textmatch"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Catalog is a read-only collection of recipes.
type Catalog struct {
	recipes    []model.Recipe
	byID       map[string]int
	byCategory map[model.Category][]int
	shuffler   Shuffler
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithShuffler sets the random source used by SampleByCategory.
func WithShuffler(s Shuffler) Option {
	return func(c *Catalog) {
		if s != nil {
			c.shuffler = s
		}
	}
}

// New builds a catalog from recipes. Later duplicates of an id are
// ignored.
func New(recipes []model.Recipe, opts ...Option) *Catalog {
	c := &Catalog{
		byID:       make(map[string]int, len(recipes)),
		byCategory: make(map[model.Category][]int),
		shuffler:   globalShuffler{},
	}
	for _, r := range recipes {
		if _, dup := c.byID[r.ID]; dup {
			continue
		}
		idx := len(c.recipes)
		c.recipes = append(c.recipes, r.Clone())
		c.byID[r.ID] = idx
		c.byCategory[r.Category] = append(c.byCategory[r.Category], idx)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// ByID returns a copy of the recipe with the given id.
func (c *Catalog) ByID(id string) (model.Recipe, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Recipe{}, false
	}
	return c.recipes[idx].Clone(), true
}

// All returns every recipe in catalog order.
func (c *Catalog) All() []model.Recipe {
	out := make([]model.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Search returns recipes whose title contains query, ignoring case.
// An empty query matches every recipe.
func (c *Catalog) Search(query string) []model.Recipe {
	var out []model.Recipe
	for _, r := range c.recipes {
		if textmatch.Contains(r.Title, query) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// SampleByCategory returns up to count distinct recipes of the category
// in random order.
func (c *Catalog) SampleByCategory(category model.Category, count int) []model.Recipe {
	pool := c.byCategory[category]
	if count <= 0 || len(pool) == 0 {
		return nil
	}

	idx := append([]int(nil), pool...)
	c.shuffler.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	n := min(count, len(idx))
	out := make([]model.Recipe, n)
	for i := range n {
		out[i] = c.recipes[idx[i]].Clone()
	}
	return out
}
