/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: producer.go
Description: Heuristic realistic value producer for the Akaylee Mocksmith.
Fabricates plausible scalar values keyed by substring matches on the field
name: identifiers get UUIDs, dates get calendar strings, amounts get money-ish
numbers. Domain-specific value tables plug in behind the Producer interface.
*/

package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-mocksmith/pkg/schema"
)

// HeuristicProducer fabricates scalar values from field-name heuristics
type HeuristicProducer struct {
	rng *rand.Rand
}

// NewHeuristicProducer creates a producer with its own random source
func NewHeuristicProducer() *HeuristicProducer {
	return &HeuristicProducer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewHeuristicProducerWithRand creates a producer over a caller-supplied
// random source for deterministic tests
func NewHeuristicProducerWithRand(rng *rand.Rand) *HeuristicProducer {
	return &HeuristicProducer{rng: rng}
}

// Produce fabricates a value for the field name and kind
func (p *HeuristicProducer) Produce(fieldName string, kind schema.Kind) interface{} {
	switch kind {
	case schema.KindString:
		return p.produceString(fieldName)
	case schema.KindNumber:
		return p.produceNumber(fieldName)
	case schema.KindBoolean:
		return p.rng.Intn(2) == 0
	case schema.KindNull:
		return nil
	default:
		// Structural kinds never reach the producer
		return nil
	}
}

func (p *HeuristicProducer) produceString(fieldName string) string {
	field := strings.ToLower(fieldName)

	switch {
	case containsAny(field, "email", "mail"):
		return fmt.Sprintf("user%d@example.com", p.rng.Intn(10000))
	case containsAny(field, "phone", "mobile"):
		return fmt.Sprintf("+1-555-%03d-%04d", p.rng.Intn(1000), p.rng.Intn(10000))
	case containsAny(field, "date", "time", "updated", "created"):
		return p.randomDate()
	case containsAny(field, "url", "site", "link"):
		return pick(p.rng, "https://example.com", "https://service.example.org", "https://docs.example.net")
	case containsAny(field, "status", "state"):
		return pick(p.rng, "active", "inactive", "pending", "expired")
	case containsAny(field, "currency"):
		return pick(p.rng, "USD", "EUR", "GBP", "ILS")
	case containsAny(field, "policy"):
		return fmt.Sprintf("POL-%06d", p.rng.Intn(1000000))
	case containsAny(field, "type", "category", "kind"):
		return pick(p.rng, "personal", "business", "family", "individual")
	case containsAny(field, "desc", "message", "note"):
		return fmt.Sprintf("Mock %s description", fieldName)
	case containsAny(field, "address", "street", "city"):
		return fmt.Sprintf("%d Example Street, Springfield", p.rng.Intn(900)+100)
	case containsAny(field, "name", "title"):
		return pick(p.rng, "Alice Cohen", "Dana Levi", "Noa Peretz", "Omer Mizrahi")
	case containsAny(field, "id", "key", "token", "trans"):
		return uuid.NewString()
	case fieldName == "":
		return pick(p.rng, "alpha", "beta", "gamma", "delta")
	default:
		return fmt.Sprintf("Mock_%s_%04d", fieldName, p.rng.Intn(10000))
	}
}

func (p *HeuristicProducer) produceNumber(fieldName string) interface{} {
	field := strings.ToLower(fieldName)

	switch {
	case containsAny(field, "amount", "sum", "value", "price", "total"):
		return float64(p.rng.Intn(99900000)+10000) / 100
	case containsAny(field, "percent", "rate", "yield"):
		return float64(p.rng.Intn(10000)) / 100
	case containsAny(field, "year"):
		return float64(1990 + p.rng.Intn(40))
	case containsAny(field, "month"):
		return float64(1 + p.rng.Intn(12))
	case containsAny(field, "day", "age"):
		return float64(1 + p.rng.Intn(31))
	case containsAny(field, "count", "number", "num", "qty"):
		return float64(1 + p.rng.Intn(100))
	default:
		return float64(1 + p.rng.Intn(1000))
	}
}

func (p *HeuristicProducer) randomDate() string {
	days := p.rng.Intn(365 * 5)
	return time.Now().AddDate(0, 0, -days).Format("2006-01-02")
}

func containsAny(field string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(field, word) {
			return true
		}
	}
	return false
}

func pick(rng *rand.Rand, choices ...string) string {
	return choices[rng.Intn(len(choices))]
}
