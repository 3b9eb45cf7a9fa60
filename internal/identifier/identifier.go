package identifier

import (
	"math/rand"
	"strings"
	"sync"
)

const (
	// RandomLength is the length of identifiers produced by Random.
	RandomLength = 10

	// Separator joins the words of a humanized identifier.
	Separator = "-"

	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Generator produces mailbox identifiers from a random source.
// A Generator is safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	intn func(n int) int
}

// New returns a Generator drawing from src.
// Use it when reproducible identifiers are needed (tests).
func New(src rand.Source) *Generator {
	return &Generator{intn: rand.New(src).Intn}
}

var defaultGenerator = &Generator{intn: rand.Intn}

// Random returns a RandomLength base-36 token from the shared source.
func Random() string {
	return defaultGenerator.Random()
}

// Humanized returns a name-adjective-animal phrase from the shared source.
func Humanized() string {
	return defaultGenerator.Humanized()
}

// Generate returns Humanized() when humanized is set, Random() otherwise.
func Generate(humanized bool) string {
	return defaultGenerator.Generate(humanized)
}

// Generate returns g.Humanized() when humanized is set, g.Random() otherwise.
func (g *Generator) Generate(humanized bool) string {
	if humanized {
		return g.Humanized()
	}
	return g.Random()
}

// Random returns a pseudo-random base-36 token of RandomLength characters.
// Tokens are neither unique nor suitable for security purposes.
func (g *Generator) Random() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, RandomLength)
	for i := range b {
		b[i] = alphabet[g.intn(len(alphabet))]
	}
	return string(b)
}

// Humanized returns one name, one adjective and one animal, lowercased and
// joined by Separator. Collisions are possible.
func (g *Generator) Humanized() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	words := make([]string, 0, 3)
	for _, dict := range [][]string{names, adjectives, animals} {
		words = append(words, strings.ToLower(dict[g.intn(len(dict))]))
	}
	return strings.Join(words, Separator)
}
