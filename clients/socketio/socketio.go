// Package socketio hosts the Socket.IO server dashboard clients connect to
// for the live event stream.
package socketio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/mux"
	"github.com/zishang520/socket.io/v2/socket"

	"linearcode/utils"
)

// SocketIOClientImpl implements the clients.SocketIONotifier interface.
// Events emitted through it are broadcast to every connected dashboard socket.
type SocketIOClientImpl struct {
	server  *socket.Server
	mutex   sync.RWMutex
	sockets map[string]*socket.Socket
}

// NewSocketIOClient creates a Socket.IO server and wires connection lifecycle handlers
func NewSocketIOClient() *SocketIOClientImpl {
	server := socket.NewServer(nil, nil)
	wsClient := &SocketIOClientImpl{
		server:  server,
		sockets: make(map[string]*socket.Socket),
	}

	err := server.On("connection", func(sockets ...any) {
		sock := sockets[0].(*socket.Socket)
		wsClient.handleConnection(sock)
	})
	utils.AssertInvariant(err == nil, fmt.Sprintf("Failed to register connection handler: %v", err))

	return wsClient
}

// RegisterWithRouter mounts the Socket.IO server on /socket.io/
func (ws *SocketIOClientImpl) RegisterWithRouter(router *mux.Router) {
	log.Printf("🚀 Registering Socket.IO server on /socket.io/ endpoint")
	router.PathPrefix("/socket.io/").Handler(ws.server.ServeHandler(nil))
	log.Printf("✅ Socket.IO server registered on /socket.io/")
}

// Emit broadcasts a payload on the given channel to all connected sockets
func (ws *SocketIOClientImpl) Emit(channel string, payload any) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()
	for socketID, sock := range ws.sockets {
		if err := sock.Emit(channel, payload); err != nil {
			log.Printf("❌ Failed to emit %s to socket %s: %v", channel, socketID, err)
		}
	}
}

// ConnectedCount returns the number of currently connected dashboard sockets
func (ws *SocketIOClientImpl) ConnectedCount() int {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()
	return len(ws.sockets)
}

func (ws *SocketIOClientImpl) handleConnection(sock *socket.Socket) {
	socketID := string(sock.Id())
	log.Printf("🔗 New Socket.IO dashboard connection, socket ID: %s", socketID)

	ws.addViewer(socketID, sock)

	err := sock.On("disconnect", func(data ...any) {
		log.Printf("🔌 Socket.IO dashboard connection closed, socket ID: %s", socketID)
		ws.removeViewer(socketID)
	})
	utils.AssertInvariant(err == nil, fmt.Sprintf("Failed to set up disconnection handler for socket %s: %v", socketID, err))
}

func (ws *SocketIOClientImpl) addViewer(socketID string, sock *socket.Socket) {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()
	ws.sockets[socketID] = sock
	log.Printf("📊 Dashboard socket %s added. Total connected: %d", socketID, len(ws.sockets))
}

func (ws *SocketIOClientImpl) removeViewer(socketID string) {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()
	delete(ws.sockets, socketID)
	log.Printf("📊 Dashboard socket %s removed. Total connected: %d", socketID, len(ws.sockets))
}
