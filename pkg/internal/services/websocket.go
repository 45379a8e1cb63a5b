//go:generate go run go.uber.org/mock/mockgen -source=websocket.go -destination=mocks/mock_websocket.go -package=mocks

package services

import (
	"strings"
	"sync"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Publisher delivers a package to every connection of a named group.
// Delivery is best effort and at most once, a disconnected client simply misses it.
type Publisher interface {
	PublishToGroup(group string, action string, payload any)
}

// GroupConn is the write side of a client socket.
type GroupConn interface {
	WriteMessage(messageType int, data []byte) error
}

const textMessage = 1

type hubClient struct {
	id     string
	conn   GroupConn
	groups []string
	queue  chan []byte
	stop   chan struct{}
	done   chan struct{}
}

// pump writes queued packages until stopped, packages still queued at that point are dropped.
func (v *hubClient) pump() {
	defer close(v.done)
	for {
		select {
		case <-v.stop:
			return
		case packet := <-v.queue:
			select {
			case <-v.stop:
				return
			default:
			}
			if err := v.conn.WriteMessage(textMessage, packet); err != nil {
				log.Debug().Err(err).Str("client", v.id).Msg("Unable to write package to client...")
			}
		}
	}
}

// Hub is the websocket implementation of Publisher.
// Membership is decided once at registration, group names are case-insensitive.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*hubClient
	groups    map[string]map[string]*hubClient
	queueSize int
}

func NewHub(queueSize int) *Hub {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Hub{
		clients:   make(map[string]*hubClient),
		groups:    make(map[string]map[string]*hubClient),
		queueSize: queueSize,
	}
}

func normalizeGroup(group string) string {
	return strings.ToLower(strings.TrimSpace(group))
}

// Register adds a connection to the given groups and returns its client id.
func (v *Hub) Register(conn GroupConn, groups ...string) string {
	client := &hubClient{
		id:    uuid.NewString(),
		conn:  conn,
		queue: make(chan []byte, v.queueSize),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	for _, group := range groups {
		if name := normalizeGroup(group); len(name) > 0 {
			client.groups = append(client.groups, name)
		}
	}

	v.mu.Lock()
	v.clients[client.id] = client
	for _, group := range client.groups {
		if _, ok := v.groups[group]; !ok {
			v.groups[group] = make(map[string]*hubClient)
		}
		v.groups[group][client.id] = client
	}
	v.mu.Unlock()

	go client.pump()

	log.Debug().Str("client", client.id).Strs("groups", client.groups).Msg("Client registered...")
	return client.id
}

// Unregister returns once the client's writer has stopped, the connection is never written to afterwards.
func (v *Hub) Unregister(clientID string) {
	v.mu.Lock()
	client, ok := v.clients[clientID]
	if !ok {
		v.mu.Unlock()
		return
	}
	delete(v.clients, clientID)
	for _, group := range client.groups {
		if members, ok := v.groups[group]; ok {
			delete(members, clientID)
			if len(members) == 0 {
				delete(v.groups, group)
			}
		}
	}
	v.mu.Unlock()

	close(client.stop)
	<-client.done
	log.Debug().Str("client", clientID).Msg("Client unregistered...")
}

func (v *Hub) PublishToGroup(group string, action string, payload any) {
	packet := models.WebSocketPackage{
		Action:  action,
		Payload: payload,
	}.Marshal()

	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, client := range v.groups[normalizeGroup(group)] {
		select {
		case client.queue <- packet:
		default:
			log.Warn().Str("client", client.id).Str("action", action).Msg("Client queue is full, package dropped...")
		}
	}
}

// Reply queues a package for a single client.
func (v *Hub) Reply(clientID string, pkg models.WebSocketPackage) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if client, ok := v.clients[clientID]; ok {
		select {
		case client.queue <- pkg.Marshal():
		default:
		}
	}
}

func (v *Hub) CountGroup(group string) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.groups[normalizeGroup(group)])
}
