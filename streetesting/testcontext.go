package streetesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    testing.TB

	alphabet []byte
}

const (
	DefaultAlphabet = "ab"
	// Terminator never appears in generated alphabets.
	Terminator = '$'
	// Foreign never appears in a generated template, patterns use it to force
	// mismatches.
	Foreign = 'x'
)

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed value
	// so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	Alphabet        string // can be "", defaults to DefaultAlphabet
	LogLevel        string // can be "", defaults to NOOP
}

func NewTestContext(t testing.TB, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)

	alphabet := cfg.Alphabet
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	c.alphabet = []byte(alphabet)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomSymbols draws n symbols from the configured alphabet.
func (c *TestContext) RandomSymbols(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = c.alphabet[c.Rand.Intn(len(c.alphabet))]
	}
	return out
}

// RandomTemplate draws n symbols and, if terminate is set, appends
// Terminator so every suffix ends at its own leaf.
func (c *TestContext) RandomTemplate(n int, terminate bool) []byte {
	tmpl := c.RandomSymbols(n)
	if terminate {
		tmpl = append(tmpl, Terminator)
	}
	return tmpl
}

// RandomPattern draws n symbols, each replaced by Foreign with probability
// 1/foreignEvery. foreignEvery <= 0 disables the replacement.
func (c *TestContext) RandomPattern(n int, foreignEvery int) []byte {
	p := c.RandomSymbols(n)
	if foreignEvery <= 0 {
		return p
	}
	for i := range p {
		if c.Rand.Intn(foreignEvery) == 0 {
			p[i] = Foreign
		}
	}
	return p
}

// RandomSplits cuts n into consecutive chunk lengths that sum to n.
func (c *TestContext) RandomSplits(n int) []int {
	var chunks []int
	for n > 0 {
		l := 1 + c.Rand.Intn(n)
		chunks = append(chunks, l)
		n -= l
	}
	return chunks
}
