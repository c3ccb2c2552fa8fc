package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func mustMarshal(t *testing.T, doc interface{}) bson.Raw {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestResolveSeq_DirectDocument(t *testing.T) {
	seq, ok := resolveSeq(mustMarshal(t, bson.M{"_id": "orderId", "seq": int64(3241)}))
	require.True(t, ok)
	assert.Equal(t, int64(3241), seq)
}

func TestResolveSeq_WrappedValueDocument(t *testing.T) {
	raw := mustMarshal(t, bson.M{
		"value": bson.M{"_id": "orderId", "seq": int64(77)},
	})
	seq, ok := resolveSeq(raw)
	require.True(t, ok)
	assert.Equal(t, int64(77), seq)
}

func TestResolveSeq_NumericWidths(t *testing.T) {
	seq, ok := resolveSeq(mustMarshal(t, bson.M{"seq": int32(12)}))
	require.True(t, ok)
	assert.Equal(t, int64(12), seq)

	seq, ok = resolveSeq(mustMarshal(t, bson.M{"seq": float64(99)}))
	require.True(t, ok)
	assert.Equal(t, int64(99), seq)
}

func TestResolveSeq_RejectsNonNumeric(t *testing.T) {
	_, ok := resolveSeq(mustMarshal(t, bson.M{"seq": "3241"}))
	assert.False(t, ok)

	_, ok = resolveSeq(mustMarshal(t, bson.M{"seq": 99.5}))
	assert.False(t, ok, "fractional sequences are corrupt, not coercible")

	_, ok = resolveSeq(mustMarshal(t, bson.M{"_id": "orderId"}))
	assert.False(t, ok)

	_, ok = resolveSeq(mustMarshal(t, bson.M{"value": "not-a-document"}))
	assert.False(t, ok)
}
