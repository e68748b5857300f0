// Package question implements the deterministic 5-slot interview-question
// generator: validity filtering of extracted fragments, attack-point
// resolution, template selection, and rendering.
package question

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/flyready/question-engine/internal/domain"
)

// StableSeed derives a stable non-negative integer from s: the top 64 bits of
// its SHA-256 digest. A cryptographic hash is used instead of a runtime hash
// because cache-hit determinism requires stability across processes.
func StableSeed(s string) uint64 {
	sum := sha256.Sum256([]byte(s))
	return binary.BigEndian.Uint64(sum[:8])
}

// EssayHash returns the hex content hash used in cache keys.
func EssayHash(essay string) string {
	if essay == "" {
		return ""
	}
	return fmt.Sprintf("%x", sha256.Sum256([]byte(essay)))
}

// BaseSeed folds the essay identity, airline and item count into the shared
// seed all slot choices derive from.
func BaseSeed(essay, airline string, atype domain.AirlineType, itemCount int) uint64 {
	return StableSeed(fmt.Sprintf("%d|%s|%s|%d", StableSeed(essay), airline, atype, itemCount))
}

// Salt table. Each slot choice uses its own (multiplier, salt) pair so that
// adjacent versions and adjacent slots land on different residues for typical
// pool sizes. Occasional repeats across versions are acceptable variety, not
// a defect.
const (
	saltQ1       = 1   // q1 pool entry: base + version*7 + 1
	saltQ4       = 4   // q4 value template: base + version*17 + 4*101
	saltQ5       = 5   // q5 pool entry: base + version*17 + 5*101
	saltSpread   = 101 // slot-salt spread factor
	multItem     = 7   // essay item choice
	multQ1       = 7
	multCategory = 7 // attack-category candidate choice
	multBasisAB  = 11
	multAny      = 17 // any-validated-sentence fallback
	multTemplate = 19 // q2 template families
)

// q3 family multipliers, indexed by (base+version)%4.
var q3FamilyMults = [4]uint64{11, 13, 17, 19}

// Attack-category salts. An explicit table instead of hashing the category
// name keeps the choice auditable and stable.
var categorySalts = map[AttackCategory]uint64{
	CategoryIdealized:   0,
	CategoryRisk:        1,
	CategoryAlternative: 2,
}

// PickIndex maps (seed, version, salt) onto [0, n). n <= 0 yields 0.
func PickIndex(base uint64, version int, mult, salt uint64, n int) int {
	if n <= 0 {
		return 0
	}
	v := base + uint64(version)*mult + salt*saltSpread
	return int(v % uint64(n))
}

// pickItemIndex selects which essay item this version drills into.
func pickItemIndex(base uint64, version, nItems int) int {
	if nItems <= 0 {
		return 0
	}
	return int((base + uint64(version)*multItem) % uint64(nItems))
}

// pickBasisAB selects basis A (0) or B (1) for the version.
func pickBasisAB(base uint64, version int) int {
	return int((base + uint64(version)*multBasisAB) % 2)
}

// isSoft reports the tone for a version: sharp on odd, soft on even.
func isSoft(version int) bool { return version%2 == 0 }
