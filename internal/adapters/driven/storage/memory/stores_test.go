package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

func TestProjectStore_SaveAndGet(t *testing.T) {
	store := NewProjectStore()
	ctx := context.Background()

	project := domain.Project{
		ID:      "proj1",
		Name:    "FinFlow AI",
		Profile: &domain.ProjectProfile{Industry: "FinTech", Highlights: []string{"B Corp"}},
	}
	require.NoError(t, store.Save(ctx, project))

	got, err := store.Get(ctx, "proj1")
	require.NoError(t, err)
	assert.Equal(t, "FinFlow AI", got.Name)
	assert.Equal(t, "FinTech", got.Industry())

	// Mutating the returned copy must not leak into the store.
	got.Profile.Highlights[0] = "changed"
	again, err := store.Get(ctx, "proj1")
	require.NoError(t, err)
	assert.Equal(t, "B Corp", again.Profile.Highlights[0])
}

func TestProjectStore_Get_NotFound(t *testing.T) {
	store := NewProjectStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectStore_Save_RequiresID(t *testing.T) {
	store := NewProjectStore()

	err := store.Save(context.Background(), domain.Project{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProjectStore_List_NewestFirst(t *testing.T) {
	store := NewProjectStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Project{ID: "a", Name: "A"}))
	require.NoError(t, store.Save(ctx, domain.Project{ID: "b", Name: "B"}))
	require.NoError(t, store.Save(ctx, domain.Project{ID: "c", Name: "C"}))
	// Updating keeps the original position.
	require.NoError(t, store.Save(ctx, domain.Project{ID: "a", Name: "A2"}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "a", list[2].ID)
	assert.Equal(t, "A2", list[2].Name)
}

func TestProjectStore_List_ByCreatedAt(t *testing.T) {
	store := NewProjectStore()
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2025, 12, d, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, store.Save(ctx, domain.Project{ID: "proj1", Name: "FinFlow AI", CreatedAt: day(15)}))
	require.NoError(t, store.Save(ctx, domain.Project{ID: "proj2", Name: "EcoTrack", CreatedAt: day(10)}))
	require.NoError(t, store.Save(ctx, domain.Project{ID: "proj3", Name: "GridPulse", CreatedAt: day(20)}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"proj3", "proj1", "proj2"}, ids)
}

func TestProjectStore_Update(t *testing.T) {
	store := NewProjectStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Project{ID: "proj1", Name: "FinFlow AI"}))

	got, err := store.Update(ctx, "proj1", func(p *domain.Project) error {
		p.SentMessages = append(p.SentMessages, "msg1")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"msg1"}, got.SentMessages)

	boom := errors.New("boom")
	_, err = store.Update(ctx, "proj1", func(p *domain.Project) error {
		p.Name = "changed"
		p.SentMessages = append(p.SentMessages, "msg2")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := store.Get(ctx, "proj1")
	require.NoError(t, err)
	assert.Equal(t, "FinFlow AI", stored.Name)
	assert.Equal(t, []string{"msg1"}, stored.SentMessages)

	_, err = store.Update(ctx, "missing", func(*domain.Project) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectStore_ConcurrentUpdate(t *testing.T) {
	store := NewProjectStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Project{ID: "proj1"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "proj1", func(p *domain.Project) error {
				p.SentMessages = append(p.SentMessages, fmt.Sprintf("msg%d", i))
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "proj1")
	require.NoError(t, err)
	assert.Len(t, got.SentMessages, 50)
}

func TestMessageStore_ListFilter(t *testing.T) {
	store := NewMessageStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.OutreachMessage{ID: "m1", ProjectID: "p1", InvestorID: "vc1"}))
	require.NoError(t, store.Save(ctx, domain.OutreachMessage{ID: "m2", ProjectID: "p2", InvestorID: "vc1", Read: true}))
	require.NoError(t, store.Save(ctx, domain.OutreachMessage{ID: "m3", ProjectID: "p1", InvestorID: "vc4"}))

	all, err := store.List(ctx, domain.MessageFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "m1", all[0].ID)

	byProject, err := store.List(ctx, domain.MessageFilter{ProjectID: "p1"})
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	unread, err := store.List(ctx, domain.MessageFilter{InvestorID: "vc1", UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "m1", unread[0].ID)
}

func TestMessageStore_UpdateInPlace(t *testing.T) {
	store := NewMessageStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.OutreachMessage{ID: "m1"}))
	require.NoError(t, store.Save(ctx, domain.OutreachMessage{ID: "m2"}))
	require.NoError(t, store.Save(ctx, domain.OutreachMessage{ID: "m1", Replied: true, ReplyID: "r1"}))

	got, err := store.Get(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, got.Replied)
	assert.Equal(t, "r1", got.ReplyID)
	assert.Equal(t, 2, store.messages.count())

	_, err = store.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReplyAndMeetingStores(t *testing.T) {
	ctx := context.Background()
	replies := NewReplyStore()
	meetings := NewMeetingStore()

	require.NoError(t, replies.Save(ctx, domain.Reply{ID: "r1", MessageID: "m1", Text: "Let's talk"}))
	require.NoError(t, meetings.Save(ctx, domain.Meeting{ID: "mt1", MessageID: "m1", Date: "2025-01-02"}))
	assert.ErrorIs(t, replies.Save(ctx, domain.Reply{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, meetings.Save(ctx, domain.Meeting{}), domain.ErrInvalidInput)

	r, err := replies.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Let's talk", r.Text)

	m, err := meetings.Get(ctx, "mt1")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", m.Date)

	rl, _ := replies.List(ctx)
	ml, _ := meetings.List(ctx)
	assert.Len(t, rl, 1)
	assert.Len(t, ml, 1)
}

func TestSearchStore(t *testing.T) {
	store := NewSearchStore()
	ctx := context.Background()

	_, err := store.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.SetCurrent(ctx, domain.Search{Preference: "AI", At: at}))
	require.NoError(t, store.SetCurrent(ctx, domain.Search{Preference: "climate", At: at}))

	cur, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "climate", cur.Preference)
	assert.Equal(t, at, cur.At)
}

func TestProjectStore_ConcurrentAccess(t *testing.T) {
	store := NewProjectStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("p%d", i)
			_ = store.Save(ctx, domain.Project{ID: id, Name: id})
			_, _ = store.Get(ctx, id)
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
