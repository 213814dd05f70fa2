package ws

import (
	"testing"

	"iothub/internal/domain/entity"
	"iothub/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func newHubClient(connectionID, identity string) *client {
	return &client{
		connectionID: connectionID,
		actor:        usecase.Actor{Kind: entity.ActorKindUser, Identity: identity},
		send:         make(chan outbound, 1),
	}
}

func TestHub_ClientsFor_MatchesByIdentity(t *testing.T) {
	h := newHub()

	alice1 := newHubClient("conn-1", "alice@example.com")
	alice2 := newHubClient("conn-2", "alice@example.com")
	bob := newHubClient("conn-3", "bob@example.com")
	h.add(alice1)
	h.add(alice2)
	h.add(bob)

	clients := h.clientsFor([]string{"alice@example.com"})
	assert.Len(t, clients, 2)

	clients = h.clientsFor([]string{"bob@example.com", "nobody@example.com"})
	assert.Len(t, clients, 1)
	assert.Equal(t, "conn-3", clients[0].connectionID)
}

func TestHub_ClientsFor_DeduplicatesAcrossRecipients(t *testing.T) {
	h := newHub()

	alice := newHubClient("conn-1", "alice@example.com")
	h.add(alice)

	clients := h.clientsFor([]string{"alice@example.com", "alice@example.com"})
	assert.Len(t, clients, 1)
}

func TestHub_Remove_IsIdempotent(t *testing.T) {
	h := newHub()

	alice := newHubClient("conn-1", "alice@example.com")
	h.add(alice)

	assert.True(t, h.remove(alice))
	assert.False(t, h.remove(alice))
	assert.Empty(t, h.clientsFor([]string{"alice@example.com"}))
}

func TestHub_All(t *testing.T) {
	h := newHub()
	assert.Empty(t, h.all())

	h.add(newHubClient("conn-1", "alice@example.com"))
	h.add(newHubClient("conn-2", "pump-1"))

	assert.Len(t, h.all(), 2)
}
