package images

import (
	"strings"
	"sync"
)

// Resolved is the display form of one ingredient: an image when one is
// known, otherwise just the text label. Missing images are a normal
// outcome, never an error.
type Resolved struct {
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	HasImage bool   `json:"has_image"`
}

// Resolver maps ingredient names to display image URLs. Lookups are
// case- and whitespace-insensitive.
type Resolver struct {
	mu     sync.RWMutex
	images map[string]string
}

func NewResolver() *Resolver {
	return &Resolver{images: make(map[string]string)}
}

// NewSeededResolver returns a resolver pre-loaded with the bundled
// ingredient art.
func NewSeededResolver() *Resolver {
	r := NewResolver()
	for name, url := range defaultImages {
		r.Register(name, url)
	}
	return r
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *Resolver) Register(name, url string) {
	key := normalize(name)
	if key == "" || url == "" {
		return
	}

	r.mu.Lock()
	r.images[key] = url
	r.mu.Unlock()
}

func (r *Resolver) Resolve(name string) Resolved {
	r.mu.RLock()
	url, ok := r.images[normalize(name)]
	r.mu.RUnlock()

	return Resolved{
		Name:     name,
		Image:    url,
		HasImage: ok,
	}
}

func (r *Resolver) ResolveAll(names []string) []Resolved {
	resolved := make([]Resolved, 0, len(names))
	for _, name := range names {
		resolved = append(resolved, r.Resolve(name))
	}
	return resolved
}

var defaultImages = map[string]string{
	"potato":       "/static/ingredients/potato.png",
	"peas":         "/static/ingredients/peas.png",
	"onion":        "/static/ingredients/onion.png",
	"tomato":       "/static/ingredients/tomato.png",
	"chicken":      "/static/ingredients/chicken.png",
	"paneer":       "/static/ingredients/paneer.png",
	"yogurt":       "/static/ingredients/yogurt.png",
	"basmati rice": "/static/ingredients/basmati-rice.png",
	"chickpeas":    "/static/ingredients/chickpeas.png",
	"garlic":       "/static/ingredients/garlic.png",
	"ginger":       "/static/ingredients/ginger.png",
	"mango":        "/static/ingredients/mango.png",
	"cardamom":     "/static/ingredients/cardamom.png",
}
