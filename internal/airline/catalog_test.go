package airline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyready/question-engine/internal/domain"
)

func loadEmbedded(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load(embeddedCatalog)
	require.NoError(t, err)
	return c
}

func TestResolve_CanonicalAndAlias(t *testing.T) {
	t.Parallel()
	c := loadEmbedded(t)

	a := c.Resolve("제주항공")
	assert.Equal(t, "제주항공", a.Name)
	assert.Equal(t, domain.AirlineLCC, a.Type)

	// short form resolves to the same carrier
	assert.Equal(t, "제주항공", c.Resolve("제주").Name)
	assert.Equal(t, "대한항공", c.Resolve("ke").Name)
}

func TestResolve_TypeClassification(t *testing.T) {
	t.Parallel()
	c := loadEmbedded(t)
	assert.Equal(t, domain.AirlineFSC, c.Resolve("아시아나항공").Type)
	assert.Equal(t, domain.AirlineHSC, c.Resolve("에어프레미아").Type)
	assert.True(t, c.Resolve("진에어").Integrated)
	assert.False(t, c.Resolve("티웨이항공").Integrated)
}

func TestResolve_UnknownDegradesToLCC(t *testing.T) {
	t.Parallel()
	c := loadEmbedded(t)
	a := c.Resolve("없는항공")
	assert.Equal(t, "없는항공", a.Name)
	assert.Equal(t, domain.AirlineLCC, a.Type)
	assert.NotEmpty(t, a.Keywords) // per-type defaults filled in
}

func TestProfile_KeywordsAlwaysPresent(t *testing.T) {
	t.Parallel()
	c := loadEmbedded(t)
	for _, name := range c.Names() {
		p := c.Profile(name)
		assert.NotEmpty(t, p.Keywords, name)
		assert.NotEmpty(t, p.Desc, name)
		assert.Equal(t, name, p.DisplayName)
	}
}

func TestLoad_RejectsBadCatalog(t *testing.T) {
	t.Parallel()
	_, err := Load([]byte("airlines: []"))
	require.Error(t, err)

	_, err = Load([]byte("airlines:\n  - name: 테스트항공\n    type: XXX"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSchemaInvalid)
}
