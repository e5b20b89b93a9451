package room

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/ehei1/chatting/proto"
)

func TestMembership(t *testing.T) {
	r := New()
	require.True(t, r.Empty())

	r.Join(7)
	r.Join(3)
	r.Join(7) // joining twice keeps the existing mailbox

	assert.True(t, r.Has(7))
	assert.False(t, r.Has(9))
	assert.Equal(t, []uint32{3, 7}, r.Members())
	assert.Equal(t, 2, r.Len())

	assert.True(t, r.Remove(3))
	assert.False(t, r.Remove(3))
	assert.Equal(t, []uint32{7}, r.Members())
}

func TestBroadcastChatSkipsSender(t *testing.T) {
	r := New()
	r.Join(1)
	r.Join(2)
	r.Join(3)

	chat := &pb.Chat{Index: 1, Text: "hello"}
	n := r.BroadcastChat(chat)
	assert.Equal(t, 2, n)

	assert.Empty(t, r.DrainChats(1))

	got := r.DrainChats(2)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(1), got[0].GetIndex())
	assert.Equal(t, "hello", got[0].GetText())

	// A drain detaches the queue; a second drain is empty.
	assert.Empty(t, r.DrainChats(2))
	assert.Len(t, r.DrainStatuses(3), 0)
}

func TestBroadcastChatDropsEmptyText(t *testing.T) {
	r := New()
	r.Join(1)
	r.Join(2)

	assert.Equal(t, 0, r.BroadcastChat(&pb.Chat{Index: 1}))
	assert.Empty(t, r.DrainChats(2))
}

func TestBroadcastStatusReachesEveryone(t *testing.T) {
	r := New()
	r.Join(1)
	r.Join(2)

	r.BroadcastStatus(&pb.StatusReply{Index: 2, Status: pb.UserEvent_USER_EVENT_JOIN_USER})

	for _, idx := range []uint32{1, 2} {
		got := r.DrainStatuses(idx)
		require.Len(t, got, 1)
		assert.Equal(t, pb.UserEvent_USER_EVENT_JOIN_USER, got[0].GetStatus())
	}
}

func TestPushStatusSingleMember(t *testing.T) {
	r := New()
	r.Join(1)
	r.Join(2)

	r.PushStatus(1, &pb.StatusReply{Index: 1, Status: pb.UserEvent_USER_EVENT_QUIT})
	r.PushStatus(99, &pb.StatusReply{Index: 99}) // unknown member, dropped

	require.Len(t, r.DrainStatuses(1), 1)
	assert.Empty(t, r.DrainStatuses(2))
}

func TestDrainUnknownMember(t *testing.T) {
	r := New()
	assert.Nil(t, r.DrainChats(5))
	assert.Nil(t, r.DrainStatuses(5))
}

// Concurrent producers and a draining consumer must neither lose nor
// duplicate a message.
func TestDrainAtomicUnderConcurrentEnqueue(t *testing.T) {
	r := New()
	r.Join(1)
	r.Join(2)

	const producers = 8
	const perProducer = 200

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				r.BroadcastChat(&pb.Chat{Index: 1, Text: fmt.Sprintf("%d-%d", p, i)})
			}
		}(p)
	}

	seen := make(map[string]bool)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for len(seen) < producers*perProducer {
			for _, c := range r.DrainChats(2) {
				assert.False(t, seen[c.GetText()], "duplicate delivery of %q", c.GetText())
				seen[c.GetText()] = true
			}
		}
	}()

	wg.Wait()
	<-done
	assert.Len(t, seen, producers*perProducer)
}
