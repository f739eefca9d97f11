package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ekosiswoyo/cv-generator/internal/model"
)

func newTestStore(ttl time.Duration) *Store {
	return NewStore(ttl, zap.NewNop())
}

func TestCreateSeedsDefaultDocument(t *testing.T) {
	store := newTestStore(time.Hour)

	sess := store.Create()
	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.Equal(t, model.Default(), sess.Document)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Default(), got)
}

func TestGetUnknownSession(t *testing.T) {
	store := newTestStore(time.Hour)

	_, err := store.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	store := newTestStore(time.Hour)
	sess := store.Create()

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	got.Experience[0].Company = "Mutated Corp"

	fresh, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech Solutions Inc.", fresh.Experience[0].Company)
}

func TestReplace(t *testing.T) {
	store := newTestStore(time.Hour)
	sess := store.Create()

	doc := model.Default()
	doc.PersonalInfo.FullName = "Jane Roe"
	require.NoError(t, store.Replace(sess.ID, doc))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", got.PersonalInfo.FullName)

	assert.ErrorIs(t, store.Replace(uuid.New(), doc), ErrNotFound)
}

func TestUpdateAppliesMutationAndReturnsResult(t *testing.T) {
	store := newTestStore(time.Hour)
	sess := store.Create()

	got, err := store.Update(sess.ID, func(d model.Document) model.Document {
		d.AccentColor = "#000000"
		return d
	})
	require.NoError(t, err)
	assert.Equal(t, "#000000", got.AccentColor)

	stored, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "#000000", stored.AccentColor)

	_, err = store.Update(uuid.New(), func(d model.Document) model.Document { return d })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := newTestStore(time.Hour)
	sess := store.Create()

	store.Delete(sess.ID)
	assert.Equal(t, 0, store.Len())
	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	store := newTestStore(30 * time.Minute)
	base := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	stale := store.Create()
	fresh := store.Create()

	// fresh gets touched 20 minutes in, stale does not
	store.now = func() time.Time { return base.Add(20 * time.Minute) }
	_, err := store.Update(fresh.ID, func(d model.Document) model.Document { return d })
	require.NoError(t, err)

	store.now = func() time.Time { return base.Add(40 * time.Minute) }
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	_, err = store.Get(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSweepNothingExpired(t *testing.T) {
	store := newTestStore(time.Hour)
	store.Create()
	store.Create()

	assert.Equal(t, 0, store.Sweep())
	assert.Equal(t, 2, store.Len())
}

func TestStartJanitorRejectsBadSpec(t *testing.T) {
	store := newTestStore(time.Hour)

	_, err := store.StartJanitor("not a schedule")
	assert.Error(t, err)

	c, err := store.StartJanitor("@every 1h")
	require.NoError(t, err)
	c.Stop()
}
