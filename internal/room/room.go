// Package room implements the in-memory broadcast core shared by the lobby
// and by dynamically created channels.
//
// A Room holds a set of members keyed by user index. Every member owns two
// pending queues: one for chat messages and one for status events. Producers
// append under the room lock; consumers detach an entire queue at once with
// DrainChats / DrainStatuses, so a message is delivered to each recipient
// exactly once, in enqueue order, no matter how the polling loops interleave.
//
// All state is in-memory and intentionally non-persistent.
package room

import (
	"sort"
	"sync"

	pb "github.com/ehei1/chatting/proto"
)

// member is the per-user mailbox. Queues are nil when empty; drain swaps
// them out under the room lock.
type member struct {
	chats    []*pb.Chat
	statuses []*pb.StatusReply
}

// Room is a set of members with per-member pending queues.
// It is safe for concurrent use by multiple goroutines (every gRPC handler
// touching the same lobby or channel runs on its own goroutine).
//
// The zero value is not usable; create instances with New.
type Room struct {
	mu      sync.Mutex
	members map[uint32]*member
}

// New creates an empty Room.
func New() *Room {
	return &Room{members: make(map[uint32]*member)}
}

// Join materialises a member for index. Joining twice is harmless: the
// existing mailbox, including anything already queued, is kept.
func (r *Room) Join(index uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[index]; !ok {
		r.members[index] = &member{}
	}
}

// Has reports whether index is currently a member.
func (r *Room) Has(index uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.members[index]
	return ok
}

// Remove drops the member and its pending queues. It reports whether the
// member existed, so callers can make removal idempotent.
func (r *Room) Remove(index uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.members[index]
	delete(r.members, index)
	return ok
}

// Members returns the current member indices in ascending order.
func (r *Room) Members() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, 0, len(r.members))
	for idx := range r.members {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the current member count.
func (r *Room) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.members)
}

// Empty reports whether the room has no members.
func (r *Room) Empty() bool {
	return r.Len() == 0
}

// BroadcastChat appends the chat to every member's chat queue except the
// sender's own. Messages with empty text are dropped. Returns the number of
// members that received the message.
func (r *Room) BroadcastChat(chat *pb.Chat) int {
	if chat.GetText() == "" {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for idx, m := range r.members {
		if idx == chat.GetIndex() {
			continue
		}
		m.chats = append(m.chats, chat)
		n++
	}
	return n
}

// BroadcastStatus appends the status event to every member's status queue,
// including the member the event is about.
func (r *Room) BroadcastStatus(status *pb.StatusReply) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		m.statuses = append(m.statuses, status)
	}
}

// PushStatus appends a status event to a single member's queue. Used for
// events addressed to one user, like the Quit acknowledgement. No-op when
// the member does not exist.
func (r *Room) PushStatus(index uint32, status *pb.StatusReply) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.members[index]; ok {
		m.statuses = append(m.statuses, status)
	}
}

// DrainChats atomically detaches and returns the member's pending chat
// queue, oldest first. Returns nil when the member is unknown or has
// nothing pending.
func (r *Room) DrainChats(index uint32) []*pb.Chat {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[index]
	if !ok {
		return nil
	}
	out := m.chats
	m.chats = nil
	return out
}

// DrainStatuses atomically detaches and returns the member's pending status
// queue, oldest first.
func (r *Room) DrainStatuses(index uint32) []*pb.StatusReply {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[index]
	if !ok {
		return nil
	}
	out := m.statuses
	m.statuses = nil
	return out
}
